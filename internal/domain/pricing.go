package domain

import (
	"github.com/pkg/errors"
)

// Группы прайса (используются как ключи в таблице pricing)
const (
	GroupBase         = "base"
	GroupFeatures     = "features"
	GroupDesign       = "design"
	GroupIntegrations = "integrations"
	GroupTimeline     = "timeline"
)

// PricingTable — цены в целых рублях. После старта процесса не меняется.
type PricingTable struct {
	Base         int64                   `json:"base"`
	Features     map[FeatureID]int64     `json:"features"`
	Design       map[DesignID]int64      `json:"design"`
	Integrations map[IntegrationID]int64 `json:"integrations"`
	Timeline     map[TimelineID]int64    `json:"timeline"`
}

// PriceEntry — одна строка прайса (группа, id, цена)
type PriceEntry struct {
	Group string `json:"group"`
	ID    string `json:"id"`
	Price int64  `json:"price"`
}

// LineItem — строка расшифровки итоговой суммы
type LineItem struct {
	Group string `json:"group"`
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// DefaultPricing возвращает базовый прайс студии
func DefaultPricing() PricingTable {
	return PricingTable{
		Base: 40000,
		Features: map[FeatureID]int64{
			FeaturePayments:  50000,
			FeatureBot:       30000,
			FeatureAnalytics: 40000,
			FeatureCatalog:   35000,
		},
		Design: map[DesignID]int64{
			DesignBasic:    0,
			DesignStandard: 30000,
			DesignCustom:   50000,
		},
		Integrations: map[IntegrationID]int64{
			IntegrationTelegram: 0,
			IntegrationStripe:   25000,
			IntegrationCRM:      35000,
		},
		Timeline: map[TimelineID]int64{
			TimelineStandard: 0,
			TimelineFast:     20000,
			TimelineUrgent:   40000,
		},
	}
}

// Total считает итоговую стоимость. Никакого кэша: сумма каждый раз пересчитывается.
func (p PricingTable) Total(s Selection) int64 {
	total := p.Base
	for _, f := range s.Features {
		total += p.Features[f]
	}
	total += p.Design[s.Design]
	for _, i := range s.Integrations {
		total += p.Integrations[i]
	}
	total += p.Timeline[s.Timeline]
	return total
}

// Breakdown — из чего сложилась сумма, в порядке шагов визарда
func (p PricingTable) Breakdown(s Selection) []LineItem {
	items := []LineItem{{Group: GroupBase, ID: GroupBase, Label: "Базовая разработка", Price: p.Base}}

	for _, f := range s.Features {
		items = append(items, LineItem{Group: GroupFeatures, ID: string(f), Label: optionLabel(GroupFeatures, string(f)), Price: p.Features[f]})
	}
	items = append(items, LineItem{Group: GroupDesign, ID: string(s.Design), Label: optionLabel(GroupDesign, string(s.Design)), Price: p.Design[s.Design]})
	for _, i := range s.Integrations {
		items = append(items, LineItem{Group: GroupIntegrations, ID: string(i), Label: optionLabel(GroupIntegrations, string(i)), Price: p.Integrations[i]})
	}
	items = append(items, LineItem{Group: GroupTimeline, ID: string(s.Timeline), Label: optionLabel(GroupTimeline, string(s.Timeline)), Price: p.Timeline[s.Timeline]})

	return items
}

// Entries раскладывает прайс в плоский список для записи в БД
func (p PricingTable) Entries() []PriceEntry {
	out := []PriceEntry{{Group: GroupBase, ID: GroupBase, Price: p.Base}}
	for _, id := range AllFeatures {
		out = append(out, PriceEntry{Group: GroupFeatures, ID: string(id), Price: p.Features[id]})
	}
	for _, id := range AllDesigns {
		out = append(out, PriceEntry{Group: GroupDesign, ID: string(id), Price: p.Design[id]})
	}
	for _, id := range AllIntegrations {
		out = append(out, PriceEntry{Group: GroupIntegrations, ID: string(id), Price: p.Integrations[id]})
	}
	for _, id := range AllTimelines {
		out = append(out, PriceEntry{Group: GroupTimeline, ID: string(id), Price: p.Timeline[id]})
	}
	return out
}

// Validate проверяет, что у каждой опции есть цена и цены неотрицательные.
func (p PricingTable) Validate() error {
	for _, e := range p.Entries() {
		if e.Price < 0 {
			return errors.Errorf("pricing: negative price for %s/%s", e.Group, e.ID)
		}
	}
	for _, id := range AllFeatures {
		if _, ok := p.Features[id]; !ok {
			return errors.Errorf("pricing: missing price for %s/%s", GroupFeatures, id)
		}
	}
	for _, id := range AllDesigns {
		if _, ok := p.Design[id]; !ok {
			return errors.Errorf("pricing: missing price for %s/%s", GroupDesign, id)
		}
	}
	for _, id := range AllIntegrations {
		if _, ok := p.Integrations[id]; !ok {
			return errors.Errorf("pricing: missing price for %s/%s", GroupIntegrations, id)
		}
	}
	for _, id := range AllTimelines {
		if _, ok := p.Timeline[id]; !ok {
			return errors.Errorf("pricing: missing price for %s/%s", GroupTimeline, id)
		}
	}
	return nil
}

// PricingFromEntries собирает прайс из строк таблицы pricing.
// Неизвестные группы/id — ошибка, неполный прайс — тоже.
func PricingFromEntries(entries []PriceEntry) (PricingTable, error) {
	p := PricingTable{
		Features:     map[FeatureID]int64{},
		Design:       map[DesignID]int64{},
		Integrations: map[IntegrationID]int64{},
		Timeline:     map[TimelineID]int64{},
	}
	hasBase := false

	for _, e := range entries {
		switch e.Group {
		case GroupBase:
			p.Base = e.Price
			hasBase = true
		case GroupFeatures:
			if !FeatureID(e.ID).Valid() {
				return PricingTable{}, errors.Wrapf(ErrUnknownOption, "pricing feature %q", e.ID)
			}
			p.Features[FeatureID(e.ID)] = e.Price
		case GroupDesign:
			if !DesignID(e.ID).Valid() {
				return PricingTable{}, errors.Wrapf(ErrUnknownOption, "pricing design %q", e.ID)
			}
			p.Design[DesignID(e.ID)] = e.Price
		case GroupIntegrations:
			if !IntegrationID(e.ID).Valid() {
				return PricingTable{}, errors.Wrapf(ErrUnknownOption, "pricing integration %q", e.ID)
			}
			p.Integrations[IntegrationID(e.ID)] = e.Price
		case GroupTimeline:
			if !TimelineID(e.ID).Valid() {
				return PricingTable{}, errors.Wrapf(ErrUnknownOption, "pricing timeline %q", e.ID)
			}
			p.Timeline[TimelineID(e.ID)] = e.Price
		default:
			return PricingTable{}, errors.Errorf("pricing: unknown group %q", e.Group)
		}
	}

	if !hasBase {
		return PricingTable{}, errors.New("pricing: missing base price")
	}
	if err := p.Validate(); err != nil {
		return PricingTable{}, err
	}
	return p, nil
}
