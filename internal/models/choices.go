package models

import (
	"fmt"
	"strings"
)

// BaseAlcohol is the primary spirit of a cocktail
type BaseAlcohol string

const (
	BaseAlcoholNone    BaseAlcohol = "None"
	BaseAlcoholGin     BaseAlcohol = "Gin"
	BaseAlcoholVodka   BaseAlcohol = "Vodka"
	BaseAlcoholRum     BaseAlcohol = "Rum"
	BaseAlcoholTequila BaseAlcohol = "Tequila"
	BaseAlcoholWhisky  BaseAlcohol = "Whisky"
)

// BaseAlcohols lists every accepted base alcohol in display order
var BaseAlcohols = []BaseAlcohol{
	BaseAlcoholNone,
	BaseAlcoholGin,
	BaseAlcoholVodka,
	BaseAlcoholRum,
	BaseAlcoholTequila,
	BaseAlcoholWhisky,
}

// ParseBaseAlcohol matches raw against the known base alcohols.
// Matching is exact after trimming, as the values are stored verbatim.
func ParseBaseAlcohol(raw string) (BaseAlcohol, error) {
	value := BaseAlcohol(strings.TrimSpace(raw))
	for _, known := range BaseAlcohols {
		if value == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%q is not a valid base alcohol", raw)
}

// Tobacco is the shisha tobacco strength of a water pipe
type Tobacco string

const (
	TobaccoNone  Tobacco = "None"
	TobaccoLight Tobacco = "Light"
	TobaccoDark  Tobacco = "Dark"
)

var Tobaccos = []Tobacco{TobaccoNone, TobaccoLight, TobaccoDark}

func ParseTobacco(raw string) (Tobacco, error) {
	value := Tobacco(strings.TrimSpace(raw))
	for _, known := range Tobaccos {
		if value == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%q is not a valid tobacco", raw)
}
