package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// clientRequest is what an admin submits to register a machine client
type clientRequest struct {
	Name   string `json:"name" form:"name" binding:"required"`
	Domain string `json:"domain" form:"domain"`
	Scopes string `json:"scopes" form:"scopes"`
}

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a client owned by the caller. Its tokens carry the caller's role.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body object{name=string,domain=string,scopes=string} true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError "Invalid request"
// @Failure 500 {object} models.APIError "Client creation failed"
// @Security BearerAuth
// @Router /adm/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req clientRequest
	if !bindInput(c, &req) {
		return
	}

	client, secret, err := cc.clientService.RegisterClient(c.Request.Context(), services.ClientRegistration{
		Name:   req.Name,
		Domain: req.Domain,
		Scopes: req.Scopes,
		UserID: c.GetUint("userID"),
	})
	if err != nil {
		log.WithError(err).Error("Failed to create OAuth client")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Client creation failed"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // Return plain secret only once
		"name":          client.Name,
		"scopes":        client.Scopes,
		"grant_types":   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Success 200 {array} object "List of clients"
// @Failure 500 {object} models.APIError "Failed to retrieve clients"
// @Security BearerAuth
// @Router /adm/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	userID := c.GetUint("userID")
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list OAuth clients")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve clients"))
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError "Client not found"
// @Security BearerAuth
// @Router /adm/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	clientID := c.Param("id")
	userID := c.GetUint("userID")

	if err := cc.clientService.DeleteClient(c.Request.Context(), clientID, userID); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, models.NewNotFoundError(models.ErrClientNotFound, "Client"))
			return
		}
		log.WithError(err).Error("Failed to delete OAuth client")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Client deletion failed"))
		return
	}

	c.Status(http.StatusNoContent)
}
