package domain

import "github.com/pkg/errors"

type FeatureID string

const (
	FeaturePayments  FeatureID = "payments"
	FeatureBot       FeatureID = "bot"
	FeatureAnalytics FeatureID = "analytics"
	FeatureCatalog   FeatureID = "catalog"
)

type DesignID string

const (
	DesignBasic    DesignID = "basic"
	DesignStandard DesignID = "standard"
	DesignCustom   DesignID = "custom"
)

type IntegrationID string

const (
	// IntegrationTelegram — обязательная интеграция, выключить нельзя
	IntegrationTelegram IntegrationID = "telegram"
	IntegrationStripe   IntegrationID = "stripe"
	IntegrationCRM      IntegrationID = "crm"
)

type TimelineID string

const (
	TimelineStandard TimelineID = "standard"
	TimelineFast     TimelineID = "fast"
	TimelineUrgent   TimelineID = "urgent"
)

// Порядок опций совпадает с порядком на экране
var (
	AllFeatures     = []FeatureID{FeaturePayments, FeatureBot, FeatureAnalytics, FeatureCatalog}
	AllDesigns      = []DesignID{DesignBasic, DesignStandard, DesignCustom}
	AllIntegrations = []IntegrationID{IntegrationTelegram, IntegrationStripe, IntegrationCRM}
	AllTimelines    = []TimelineID{TimelineStandard, TimelineFast, TimelineUrgent}
)

var (
	ErrUnknownOption = errors.New("unknown option")
	ErrUnknownAction = errors.New("unknown action")
)

func (id FeatureID) Valid() bool {
	for _, v := range AllFeatures {
		if v == id {
			return true
		}
	}
	return false
}

func (id DesignID) Valid() bool {
	for _, v := range AllDesigns {
		if v == id {
			return true
		}
	}
	return false
}

func (id IntegrationID) Valid() bool {
	for _, v := range AllIntegrations {
		if v == id {
			return true
		}
	}
	return false
}

func (id TimelineID) Valid() bool {
	for _, v := range AllTimelines {
		if v == id {
			return true
		}
	}
	return false
}
