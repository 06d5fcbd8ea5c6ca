package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryHair   Category = "hair"
	CategoryNails  Category = "nails"
	CategoryMakeup Category = "makeup"
	CategorySpa    Category = "spa"
	CategoryFacial Category = "facial"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryHair, CategoryNails, CategoryMakeup, CategorySpa, CategoryFacial}

var categoryLabels = map[Category]string{
	CategoryHair:   "Hair Styling",
	CategoryNails:  "Nail Care",
	CategoryMakeup: "Makeup Artistry",
	CategorySpa:    "Spa & Massage",
	CategoryFacial: "Facial Treatments",
}

func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]

	return ok
}

type Service struct {
	ID          string
	Name        string
	Category    Category
	Description string
	Price       decimal.Decimal
	Duration    int
	Image       string
	Popular     bool
}

// Totals is the aggregate price and duration of a service selection.
type Totals struct {
	Price    decimal.Decimal
	Duration int
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		Price:    t.Price.Add(other.Price),
		Duration: t.Duration + other.Duration,
	}
}

var (
	errDuplicateService = errors.New("duplicate service id")
	errUnknownCategory  = errors.New("unknown category")
	errNegativePrice    = errors.New("price must not be negative")
	errInvalidDuration  = errors.New("duration must be positive")
	errMissingID        = errors.New("service id is required")
)

// Catalog is the immutable, validated list of offered services.
type Catalog struct {
	services []Service
	index    map[string]int
}

func NewCatalog(services []Service) (*Catalog, error) {
	catalog := &Catalog{
		services: make([]Service, 0, len(services)),
		index:    make(map[string]int, len(services)),
	}

	for _, service := range services {
		switch {
		case service.ID == "":
			return nil, errMissingID
		case !service.Category.Valid():
			return nil, fmt.Errorf("%s: %w %q", service.ID, errUnknownCategory, service.Category)
		case service.Price.IsNegative():
			return nil, fmt.Errorf("%s: %w", service.ID, errNegativePrice)
		case service.Duration <= 0:
			return nil, fmt.Errorf("%s: %w", service.ID, errInvalidDuration)
		}

		if _, ok := catalog.index[service.ID]; ok {
			return nil, fmt.Errorf("%s: %w", service.ID, errDuplicateService)
		}

		catalog.index[service.ID] = len(catalog.services)
		catalog.services = append(catalog.services, service)
	}

	return catalog, nil
}

func (c *Catalog) All() []Service {
	return append([]Service(nil), c.services...)
}

func (c *Catalog) ByCategory(category Category) []Service {
	services := []Service{}

	for _, service := range c.services {
		if service.Category == category {
			services = append(services, service)
		}
	}

	return services
}

func (c *Catalog) ByID(id string) (Service, bool) {
	idx, ok := c.index[id]
	if !ok {
		return Service{}, false
	}

	return c.services[idx], true
}

// ByIDs resolves ids in order, returning the unknown ones separately.
func (c *Catalog) ByIDs(ids []string) (services []Service, unknown []string) {
	services = make([]Service, 0, len(ids))

	for _, id := range ids {
		service, ok := c.ByID(id)
		if !ok {
			unknown = append(unknown, id)

			continue
		}

		services = append(services, service)
	}

	return services, unknown
}

func Sum(services []Service) Totals {
	totals := Totals{Price: decimal.Zero}

	for _, service := range services {
		totals = totals.Add(Totals{Price: service.Price, Duration: service.Duration})
	}

	return totals
}

const minutesPerHour = 60

// FormatDuration renders minutes as "45 min", "1 hr", "2 hrs" or "2 hrs 30 min".
func FormatDuration(minutes int) string {
	if minutes < minutesPerHour {
		return fmt.Sprintf("%d min", minutes)
	}

	hours, mins := minutes/minutesPerHour, minutes%minutesPerHour

	unit := "hr"
	if hours > 1 {
		unit = "hrs"
	}

	if mins == 0 {
		return fmt.Sprintf("%d %s", hours, unit)
	}

	return fmt.Sprintf("%d %s %d min", hours, unit, mins)
}
