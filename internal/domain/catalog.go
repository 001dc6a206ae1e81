package domain

import (
	"fmt"
	"math"
)

// Option описывает одну опцию на шаге калькулятора
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Badge       string `json:"badge"` // "+50т ₽", "Включено"...
	Order       int    `json:"order"`
	Locked      bool   `json:"locked,omitempty"` // нельзя снять (telegram)
}

// StepInfo — шаг визарда с опциями
type StepInfo struct {
	Step    Step     `json:"step"`
	Name    string   `json:"name"`  // подпись в прогресс-баре
	Title   string   `json:"title"` // заголовок шага
	Accent  string   `json:"accent"`
	Group   string   `json:"group"`
	Multi   bool     `json:"multi"` // множественный выбор
	Options []Option `json:"options"`
}

type optionText struct {
	label       string
	description string
	zeroBadge   string
}

var optionTexts = map[string]map[string]optionText{
	GroupFeatures: {
		string(FeaturePayments):  {label: "Платежи"},
		string(FeatureBot):       {label: "Чат-бот"},
		string(FeatureAnalytics): {label: "Аналитика"},
		string(FeatureCatalog):   {label: "Каталог"},
	},
	GroupDesign: {
		string(DesignBasic):    {label: "Базовый", description: "Стандартные компоненты Telegram", zeroBadge: "Включено"},
		string(DesignStandard): {label: "Стандартный", description: "Уникальные элементы и анимации"},
		string(DesignCustom):   {label: "Премиум", description: "Полностью кастомный дизайн"},
	},
	GroupIntegrations: {
		string(IntegrationTelegram): {label: "Telegram Bot API", description: "Обязательная интеграция", zeroBadge: "Включено"},
		string(IntegrationStripe):   {label: "Платежные системы"},
		string(IntegrationCRM):      {label: "CRM / Базы данных"},
	},
	GroupTimeline: {
		string(TimelineStandard): {label: "Стандартные", description: "2-3 недели", zeroBadge: "Стандарт"},
		string(TimelineFast):     {label: "Быстрые", description: "7-10 дней"},
		string(TimelineUrgent):   {label: "Срочные", description: "3-5 дней"},
	},
}

var stepNames = map[Step]string{
	StepFeatures:     "Функционал",
	StepDesign:       "Дизайн",
	StepIntegrations: "Интеграции",
	StepTimeline:     "Сроки",
	StepResults:      "Результат",
}

// StepName — подпись шага; для шагов вне [1,5] пустая строка
func StepName(s Step) string {
	return stepNames[s]
}

// AllSteps — все шаги по порядку
func AllSteps() []Step {
	return []Step{StepFeatures, StepDesign, StepIntegrations, StepTimeline, StepResults}
}

// PriceBadge: "+50т ₽" для платных опций, zeroLabel для бесплатных
func PriceBadge(price int64, zeroLabel string) string {
	if price == 0 && zeroLabel != "" {
		return zeroLabel
	}
	return fmt.Sprintf("+%.0fт ₽", math.Round(float64(price)/1000))
}

func optionLabel(group, id string) string {
	if group == GroupBase {
		return "Базовая разработка"
	}
	if t, ok := optionTexts[group][id]; ok {
		return t.label
	}
	return id
}

func newOption(group, id string, price int64, order int) Option {
	t := optionTexts[group][id]
	return Option{
		ID:          id,
		Label:       t.label,
		Description: t.description,
		Price:       price,
		Badge:       PriceBadge(price, t.zeroBadge),
		Order:       order,
	}
}

// Catalog собирает шаги 1–4 с опциями и ценами из прайса
func Catalog(p PricingTable) []StepInfo {
	features := StepInfo{Step: StepFeatures, Name: StepName(StepFeatures), Title: "Выберите необходимый функционал", Accent: "accent", Group: GroupFeatures, Multi: true}
	for i, id := range AllFeatures {
		features.Options = append(features.Options, newOption(GroupFeatures, string(id), p.Features[id], i+1))
	}

	design := StepInfo{Step: StepDesign, Name: StepName(StepDesign), Title: "Выберите уровень дизайна", Accent: "primary", Group: GroupDesign}
	for i, id := range AllDesigns {
		design.Options = append(design.Options, newOption(GroupDesign, string(id), p.Design[id], i+1))
	}

	integrations := StepInfo{Step: StepIntegrations, Name: StepName(StepIntegrations), Title: "Выберите интеграции", Accent: "secondary", Group: GroupIntegrations, Multi: true}
	for i, id := range AllIntegrations {
		o := newOption(GroupIntegrations, string(id), p.Integrations[id], i+1)
		o.Locked = id == IntegrationTelegram
		integrations.Options = append(integrations.Options, o)
	}

	timeline := StepInfo{Step: StepTimeline, Name: StepName(StepTimeline), Title: "Выберите сроки разработки", Accent: "accent", Group: GroupTimeline}
	for i, id := range AllTimelines {
		timeline.Options = append(timeline.Options, newOption(GroupTimeline, string(id), p.Timeline[id], i+1))
	}

	return []StepInfo{features, design, integrations, timeline}
}

// FindStep ищет шаг каталога по номеру
func FindStep(steps []StepInfo, s Step) *StepInfo {
	for i := range steps {
		if steps[i].Step == s {
			return &steps[i]
		}
	}
	return nil
}

// IsSelected — выбрана ли опция шага в текущем состоянии
func (s Selection) IsSelected(group, id string) bool {
	switch group {
	case GroupFeatures:
		return s.HasFeature(FeatureID(id))
	case GroupDesign:
		return string(s.Design) == id
	case GroupIntegrations:
		return s.HasIntegration(IntegrationID(id))
	case GroupTimeline:
		return string(s.Timeline) == id
	}
	return false
}

// ActionFor — какое действие выбирает/снимает опцию группы
func ActionFor(group string) ActionKind {
	switch group {
	case GroupFeatures:
		return ActionToggleFeature
	case GroupDesign:
		return ActionSetDesign
	case GroupIntegrations:
		return ActionToggleIntegration
	case GroupTimeline:
		return ActionSetTimeline
	}
	return ""
}
