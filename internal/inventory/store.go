package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrNotFound    = errors.New("product not found")
	ErrEmpty       = errors.New("inventory is empty")
	ErrNoMatch     = errors.New("no matching products")
)

type Record struct {
	ID       string
	Name     string
	Quantity int
	Price    float64
}

// String omits the currency, which is a display setting of the caller.
func (r Record) String() string {
	return fmt.Sprintf("%s, Quantity: %d, Price: %s", r.Name, r.Quantity, FormatPrice(r.Price))
}

// FormatPrice prints the shortest representation that round-trips, but never
// fewer than one decimal place.
func FormatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}

type IDName struct {
	ID   string
	Name string
}

// Patch carries the optional fields of an update. A nil field is left as is.
type Patch struct {
	Quantity *int
	Price    *float64
}

type Store interface {
	Add(r Record) error
	IsIDUnique(id string) bool
	Remove(id string) error
	Update(id string, p Patch) error
	ListAll() ([]Record, error)
	ListIDs() ([]IDName, error)
	FindByName(sub string) ([]Record, error)
	Len() int
}
