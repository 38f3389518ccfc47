package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client_not_found")

// ClientRegistration describes a machine client to be issued credentials
type ClientRegistration struct {
	Name   string
	Domain string
	Scopes string
	UserID uint
}

type ClientService interface {
	CreateClient(ctx context.Context, client *models.OAuthClient) error
	// RegisterClient generates an id and secret for a client credentials client.
	// The plain secret is returned once and only its bcrypt hash is stored.
	RegisterClient(ctx context.Context, reg ClientRegistration) (*models.OAuthClient, string, error)
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, userID uint) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, client *models.OAuthClient) error {
	return s.db.WithContext(ctx).Create(client).Error
}

func (s *clientService) RegisterClient(ctx context.Context, reg ClientRegistration) (*models.OAuthClient, string, error) {
	if reg.UserID == 0 {
		return nil, "", errors.New("a client must be owned by a user")
	}

	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash client secret: %w", err)
	}

	client := &models.OAuthClient{
		ID:         uuid.New().String(),
		Secret:     string(hashedSecret),
		Name:       reg.Name,
		Domain:     reg.Domain,
		Scopes:     reg.Scopes,
		GrantTypes: "client_credentials",
		UserID:     reg.UserID,
	}
	if err := s.CreateClient(ctx, client); err != nil {
		return nil, "", err
	}
	return client, secret, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
