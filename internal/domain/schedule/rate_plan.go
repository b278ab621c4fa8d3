package schedule

import (
	"errors"
	"sort"

	"courtside/internal/domain/money"
)

var ErrNoRateForInterval = errors.New("no template rate covers the requested interval")

// RatePlan answers "what does this interval cost" from a court's weekly
// templates. It is the single slot-rate lookup shared by availability
// reporting and booking-line pricing, so both always agree on price.
//
// Templates are held in a fixed order (start time, then id) because no
// precedence rule exists between overlapping same-weekday templates;
// the first covering template in that order supplies a slot's rate.
type RatePlan struct {
	templates []*WeeklyTemplate
}

func NewRatePlan(templates []*WeeklyTemplate) RatePlan {
	sorted := make([]*WeeklyTemplate, len(templates))
	copy(sorted, templates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start() != sorted[j].Start() {
			return sorted[i].Start().Before(sorted[j].Start())
		}
		return sorted[i].ID().String() < sorted[j].ID().String()
	})
	return RatePlan{templates: sorted}
}

func (p RatePlan) Templates() []*WeeklyTemplate {
	return p.templates
}

// PriceFor prices [start,end) on the given weekday by slicing it into
// slots of slotDurationMin and summing each slot's template rate.
// Maintenance templates do not price slots. A slot no template covers
// makes the whole interval unpriceable.
func (p RatePlan) PriceFor(weekday int, start, end TimeOfDay, slotDurationMin int) (money.Money, error) {
	if slotDurationMin <= 0 {
		return money.Money{}, ErrNoRateForInterval
	}
	if !start.Before(end) {
		return money.Money{}, ErrNoRateForInterval
	}

	total := money.Zero()
	for cur := start; cur.Before(end); cur = cur.Add(slotDurationMin) {
		slotEnd := cur.Add(slotDurationMin)
		if slotEnd.After(end) {
			slotEnd = end
		}

		rate, ok := p.rateFor(weekday, cur, slotEnd)
		if !ok {
			return money.Money{}, ErrNoRateForInterval
		}
		total = total.Add(rate)
	}
	return total, nil
}

func (p RatePlan) rateFor(weekday int, start, end TimeOfDay) (money.Money, bool) {
	for _, t := range p.templates {
		if !t.AppliesOn(weekday) || t.IsMaintenance() {
			continue
		}
		if !start.Before(t.Start()) && !t.End().Before(end) {
			return t.PricePerSlot(), true
		}
	}
	return money.Money{}, false
}
