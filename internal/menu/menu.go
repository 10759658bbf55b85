// Package menu drives an inventory.Store from a line-oriented text menu.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"MiniStock/internal/inventory"
	"MiniStock/pkg/kit"
)

const menuText = `
1. Add product
2. Remove product by ID
3. Update product by ID
4. Search products by name
5. Show inventory
6. Exit
`

const (
	promptChoice      = "Select an option: "
	promptID          = "Enter the product ID (e.g. EC-001): "
	promptName        = "Enter the product name: "
	promptQuantity    = "Enter the product quantity: "
	promptPrice       = "Enter the product price: "
	promptRemoveID    = "Enter the ID of the product to remove (e.g. EC-001): "
	promptUpdateID    = "Enter the ID of the product to update (e.g. EC-001): "
	promptNewQuantity = "Enter the new quantity (leave blank to keep): "
	promptNewPrice    = "Enter the new price (leave blank to keep): "
	promptSearch      = "Enter the product name to search for: "

	msgAdded     = "Product '%s' added.\n"
	msgDuplicate = "Error: ID '%s' already exists. Please use a unique ID.\n"
	msgRemoved   = "Product with ID '%s' removed.\n"
	msgUpdated   = "Product with ID '%s' updated.\n"
	msgNotFound  = "Error: product not found.\n"
	msgEmpty     = "No products in inventory.\n"
	msgNoMatch   = "No products found with that name.\n"
	msgIDsHeader = "Available IDs:\n"
	msgBadNumber = "Error: %q is not a valid number.\n"
)

type Session struct {
	Store    inventory.Store
	In       io.Reader
	Out      io.Writer
	Log      *zap.Logger
	Currency string
}

// Run loops over the menu until the operator picks exit or input ends.
func (s *Session) Run() error {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	if s.Currency == "" {
		s.Currency = "$"
	}

	p := newPrompter(s.In, s.Out)
	for {
		fmt.Fprint(s.Out, menuText)
		choice, err := p.ask(promptChoice)
		if err != nil {
			return endOfInput(err)
		}

		choice = strings.TrimSpace(choice)
		if choice == "6" {
			return nil
		}

		if err := s.dispatch(p, choice); err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Session) dispatch(p *prompter, choice string) error {
	switch choice {
	case "1":
		return s.add(p)
	case "2":
		return s.remove(p)
	case "3":
		return s.update(p)
	case "4":
		return s.search(p)
	case "5":
		s.showAll()
	default:
		s.Log.Debug("unknown menu choice", zap.String("choice", choice))
	}
	return nil
}

func (s *Session) add(p *prompter) error {
	var id string
	for {
		v, err := p.ask(promptID)
		if err != nil {
			return err
		}
		if s.Store.IsIDUnique(v) {
			id = v
			break
		}
		fmt.Fprintf(s.Out, msgDuplicate, v)
	}

	name, err := p.ask(promptName)
	if err != nil {
		return err
	}
	qty, err := askParsed(p, promptQuantity, parseQuantity)
	if err != nil {
		return err
	}
	price, err := askParsed(p, promptPrice, parsePrice)
	if err != nil {
		return err
	}

	r := inventory.Record{ID: id, Name: name, Quantity: qty, Price: price}
	s.report(s.Store.Add(r), fmt.Sprintf(msgAdded, r.Name), r.ID)
	return nil
}

func (s *Session) remove(p *prompter) error {
	s.showIDs()

	id, err := p.ask(promptRemoveID)
	if err != nil {
		return err
	}
	s.report(s.Store.Remove(id), fmt.Sprintf(msgRemoved, id), id)
	return nil
}

func (s *Session) update(p *prompter) error {
	s.showIDs()

	id, err := p.ask(promptUpdateID)
	if err != nil {
		return err
	}

	var patch inventory.Patch
	if patch.Quantity, err = askOptional(p, promptNewQuantity, parseQuantity); err != nil {
		return err
	}
	if patch.Price, err = askOptional(p, promptNewPrice, parsePrice); err != nil {
		return err
	}

	s.report(s.Store.Update(id, patch), fmt.Sprintf(msgUpdated, id), id)
	return nil
}

func (s *Session) search(p *prompter) error {
	q, err := p.ask(promptSearch)
	if err != nil {
		return err
	}

	found, err := s.Store.FindByName(q)
	if err != nil {
		s.report(err, "", "")
		return nil
	}
	fmt.Fprintln(s.Out, renderRecords(found, s.Currency))
	return nil
}

func (s *Session) showAll() {
	all, err := s.Store.ListAll()
	if err != nil {
		s.report(err, "", "")
		return
	}
	fmt.Fprintln(s.Out, renderRecords(all, s.Currency))
}

func (s *Session) showIDs() {
	ids, err := s.Store.ListIDs()
	if err != nil {
		s.report(err, "", "")
		return
	}

	fmt.Fprint(s.Out, msgIDsHeader)
	for _, in := range ids {
		fmt.Fprintf(s.Out, "- %s, %s\n", in.ID, in.Name)
	}
}

// report prints ok on success or the operator message for err.
func (s *Session) report(err error, ok, id string) {
	switch {
	case err == nil:
		fmt.Fprint(s.Out, ok)
	case errors.Is(err, inventory.ErrDuplicateID):
		fmt.Fprintf(s.Out, msgDuplicate, id)
	case errors.Is(err, inventory.ErrNotFound):
		fmt.Fprint(s.Out, msgNotFound)
	case errors.Is(err, inventory.ErrEmpty):
		fmt.Fprint(s.Out, msgEmpty)
	case errors.Is(err, inventory.ErrNoMatch):
		fmt.Fprint(s.Out, msgNoMatch)
	default:
		s.Log.Error("store failure", zap.Error(err))
		fmt.Fprintf(s.Out, "Error: %v\n", err)
	}
}

func renderRecords(recs []inventory.Record, currency string) string {
	t := kit.NewTable("ID", "Name", "Quantity", "Price")
	for _, r := range recs {
		t.Row(r.ID, r.Name, r.Quantity, currency+inventory.FormatPrice(r.Price))
	}
	t.AlignRight(3, 4)
	return t.String()
}

func endOfInput(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
