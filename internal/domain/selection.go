package domain

import "github.com/pkg/errors"

// Step — позиция в визарде: 1–4 выбор опций, 5 — результат
type Step int

const (
	StepFeatures Step = iota + 1
	StepDesign
	StepIntegrations
	StepTimeline
	StepResults

	FirstStep = StepFeatures
	LastStep  = StepResults
)

// Direction — куда пользователь шёл в последний раз (только для анимации)
type Direction int

const (
	DirectionNone     Direction = 0
	DirectionForward  Direction = 1
	DirectionBackward Direction = -1
)

type ActionKind string

const (
	ActionToggleFeature     ActionKind = "toggle_feature"
	ActionSetDesign         ActionKind = "set_design"
	ActionToggleIntegration ActionKind = "toggle_integration"
	ActionSetTimeline       ActionKind = "set_timeline"
	ActionNext              ActionKind = "next"
	ActionBack              ActionKind = "back"
	ActionReset             ActionKind = "reset"
)

// Action — одно действие пользователя в визарде. ID нужен только для выбора опций.
type Action struct {
	Kind ActionKind `json:"action" validate:"required,oneof=toggle_feature set_design toggle_integration set_timeline next back reset"`
	ID   string     `json:"id,omitempty" validate:"max=32"`
}

// Selection — ответы пользователя в калькуляторе на время одного визита.
// Features и Integrations — множества, порядок элементов = порядок выбора.
type Selection struct {
	Features     []FeatureID     `json:"features"`
	Design       DesignID        `json:"design"`
	Integrations []IntegrationID `json:"integrations"`
	Timeline     TimelineID      `json:"timeline"`
	Step         Step            `json:"step"`
	Direction    Direction       `json:"direction"`
}

// NewSelection — состояние при открытии калькулятора
func NewSelection() Selection {
	return Selection{
		Features:     []FeatureID{},
		Design:       DesignStandard,
		Integrations: []IntegrationID{IntegrationTelegram},
		Timeline:     TimelineStandard,
		Step:         FirstStep,
		Direction:    DirectionNone,
	}
}

// Clone — копия без общих слайсов
func (s Selection) Clone() Selection {
	c := s
	c.Features = append([]FeatureID{}, s.Features...)
	c.Integrations = append([]IntegrationID{}, s.Integrations...)
	return c
}

func (s *Selection) HasFeature(id FeatureID) bool {
	for _, f := range s.Features {
		if f == id {
			return true
		}
	}
	return false
}

func (s *Selection) HasIntegration(id IntegrationID) bool {
	for _, i := range s.Integrations {
		if i == id {
			return true
		}
	}
	return false
}

// ToggleFeature добавляет функцию, если её нет, и убирает, если есть
func (s *Selection) ToggleFeature(id FeatureID) error {
	if !id.Valid() {
		return errors.Wrapf(ErrUnknownOption, "feature %q", id)
	}
	if s.HasFeature(id) {
		out := make([]FeatureID, 0, len(s.Features))
		for _, f := range s.Features {
			if f != id {
				out = append(out, f)
			}
		}
		s.Features = out
		return nil
	}
	s.Features = append(s.Features, id)
	return nil
}

func (s *Selection) SetDesign(id DesignID) error {
	if !id.Valid() {
		return errors.Wrapf(ErrUnknownOption, "design %q", id)
	}
	s.Design = id
	return nil
}

// ToggleIntegration — telegram не трогаем никогда
func (s *Selection) ToggleIntegration(id IntegrationID) error {
	if !id.Valid() {
		return errors.Wrapf(ErrUnknownOption, "integration %q", id)
	}
	if id == IntegrationTelegram {
		return nil
	}
	if s.HasIntegration(id) {
		out := make([]IntegrationID, 0, len(s.Integrations))
		for _, i := range s.Integrations {
			if i != id {
				out = append(out, i)
			}
		}
		s.Integrations = out
		return nil
	}
	s.Integrations = append(s.Integrations, id)
	return nil
}

func (s *Selection) SetTimeline(id TimelineID) error {
	if !id.Valid() {
		return errors.Wrapf(ErrUnknownOption, "timeline %q", id)
	}
	s.Timeline = id
	return nil
}

func (s *Selection) Advance() {
	s.Direction = DirectionForward
	if s.Step < LastStep {
		s.Step++
	}
}

func (s *Selection) Retreat() {
	s.Direction = DirectionBackward
	if s.Step > FirstStep {
		s.Step--
	}
}

// Reset возвращает на первый шаг, ответы сохраняются ("изменить параметры")
func (s *Selection) Reset() {
	s.Direction = DirectionBackward
	s.Step = FirstStep
}

// Apply применяет действие; при ошибке состояние не меняется
func (s *Selection) Apply(a Action) error {
	switch a.Kind {
	case ActionToggleFeature:
		return s.ToggleFeature(FeatureID(a.ID))
	case ActionSetDesign:
		return s.SetDesign(DesignID(a.ID))
	case ActionToggleIntegration:
		return s.ToggleIntegration(IntegrationID(a.ID))
	case ActionSetTimeline:
		return s.SetTimeline(TimelineID(a.ID))
	case ActionNext:
		s.Advance()
	case ActionBack:
		s.Retreat()
	case ActionReset:
		s.Reset()
	default:
		return errors.Wrapf(ErrUnknownAction, "%q", a.Kind)
	}
	return nil
}

// Progress — заполненность прогресс-бара в процентах, на первом шаге 0
func (s Selection) Progress() int {
	step := s.Step
	if step < FirstStep {
		step = FirstStep
	}
	if step > LastStep {
		step = LastStep
	}
	return int(step-FirstStep) * 100 / int(LastStep-FirstStep)
}

func (s Selection) IsResults() bool {
	return s.Step == StepResults
}
