package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store owns the ordered product list and its durable copy in a Slot.
//
// The position of a product in the list is its identity for RemoveAt and
// ReplaceAt: removing a product shifts all the following ones down by one.
//
// Every mutation rewrites the whole list to the slot, then notifies the
// subscribers. A Store is not safe for concurrent use.
type Store struct {
	slot        Slot
	products    []Product
	subscribers []func([]Product)
	// set when the slot could not be read, the store then refuses to write.
	unavailable error
}

// NewStore creates an empty store on top of slot, without reading it.
func NewStore(slot Slot) *Store {
	return &Store{slot: slot, products: make([]Product, 0)}
}

// Open creates a store and loads its products from slot.
func Open(ctx context.Context, slot Slot) (*Store, error) {
	s := NewStore(slot)
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory list with the content of the slot and returns
// a copy of it.
//
// An absent or unparsable slot is "no data yet" and yields an empty list.
// Any other read failure is returned, wrapping ErrUnavailable: the list is
// then empty and every mutation and Persist fail until a Load succeeds, so
// that the stored products are never overwritten.
//
// Products stored without an ID get one in memory only, it is stored by the
// next write.
func (s *Store) Load(ctx context.Context) ([]Product, error) {
	products, err := s.read(ctx)
	if err != nil {
		s.products = make([]Product, 0)
		s.unavailable = err
		return s.Products(), err
	}
	s.products, s.unavailable = products, nil

	upgraded := 0
	for i := range s.products {
		if s.products[i].ID == "" {
			s.products[i].ID = uuid.NewString()
			upgraded++
		}
	}
	if upgraded > 0 {
		log.Info().Int("products", upgraded).Str("slot", fmt.Sprint(s.slot)).Msg("assigned ids to stored products, run 'inv fmt' to store them")
	}
	return s.Products(), nil
}

func (s *Store) read(ctx context.Context) ([]Product, error) {
	data, err := s.slot.Read(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("slot", fmt.Sprint(s.slot)).Msg("no products stored yet")
		return make([]Product, 0), nil
	}
	if err != nil {
		log.Error().Err(err).Str("slot", fmt.Sprint(s.slot)).Msg("cannot read products")
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, s.slot, err)
	}
	products, err := DecodeProducts(bytes.NewReader(data))
	if err != nil {
		log.Warn().Err(err).Str("slot", fmt.Sprint(s.slot)).Msg("stored products are corrupted, starting empty")
		return make([]Product, 0), nil
	}
	if products == nil {
		products = make([]Product, 0)
	}
	return products, nil
}

// Persist writes the whole list to the slot, it returns a *PersistenceError
// on failure.
func (s *Store) Persist(ctx context.Context) error {
	if s.unavailable != nil {
		return &PersistenceError{Slot: fmt.Sprint(s.slot), Err: s.unavailable}
	}
	var b bytes.Buffer
	if err := EncodeProducts(&b, s.products); err != nil {
		return &PersistenceError{Slot: fmt.Sprint(s.slot), Err: err}
	}
	if err := s.slot.Write(ctx, b.Bytes()); err != nil {
		return &PersistenceError{Slot: fmt.Sprint(s.slot), Err: err}
	}
	return nil
}

// Subscribe registers fn to be called with the new list after every
// mutation, whether persisting it succeeded or not.
func (s *Store) Subscribe(fn func(products []Product)) {
	s.subscribers = append(s.subscribers, fn)
}

// commit persists the list and notifies subscribers.
func (s *Store) commit(ctx context.Context) error {
	err := s.Persist(ctx)
	if err != nil {
		log.Error().Err(err).Msg("products changed in memory but not in storage")
	}
	for _, fn := range s.subscribers {
		fn(s.Products())
	}
	return err
}

// Add validates p, appends it to the list and persists. It returns the new
// index of p, which is the last one.
func (s *Store) Add(ctx context.Context, p Product) (int, error) {
	if s.unavailable != nil {
		return -1, s.unavailable
	}
	if err := p.Validate(); err != nil {
		return -1, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.products = append(s.products, p)
	return len(s.products) - 1, s.commit(ctx)
}

// RemoveAt removes the product at index i and persists. It returns an
// *IndexError, and changes nothing, when i is out of range.
func (s *Store) RemoveAt(ctx context.Context, i int) error {
	if s.unavailable != nil {
		return s.unavailable
	}
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.products = slices.Delete(s.products, i, i+1)
	return s.commit(ctx)
}

// ReplaceAt edits the product at index i.
//
// Editing is "delete then re-append": the product at i is removed and p is
// appended, so that p always becomes the last product and the ones after i
// shift down. It is not an in-place update. Both changes are persisted in a
// single write. p keeps the ID of the product it replaces unless it has its
// own.
//
// It returns the new index of p.
func (s *Store) ReplaceAt(ctx context.Context, i int, p Product) (int, error) {
	if s.unavailable != nil {
		return -1, s.unavailable
	}
	if err := p.Validate(); err != nil {
		return -1, err
	}
	if err := s.checkIndex(i); err != nil {
		return -1, err
	}
	if p.ID == "" {
		p.ID = s.products[i].ID
	}
	s.products = append(slices.Delete(s.products, i, i+1), p)
	return len(s.products) - 1, s.commit(ctx)
}

// Clear removes all products and persists.
func (s *Store) Clear(ctx context.Context) error {
	if s.unavailable != nil {
		return s.unavailable
	}
	s.products = make([]Product, 0)
	return s.commit(ctx)
}

func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.products) {
		return &IndexError{Index: i, Len: len(s.products)}
	}
	return nil
}

// Products returns a copy of the list.
func (s *Store) Products() []Product { return slices.Clone(s.products) }

// Len returns the number of products.
func (s *Store) Len() int { return len(s.products) }

// At returns the product at index i.
func (s *Store) At(i int) (Product, error) {
	if err := s.checkIndex(i); err != nil {
		return Product{}, err
	}
	return s.products[i], nil
}

// IndexOf returns the index of the product with this ID, or -1.
func (s *Store) IndexOf(id string) int {
	return slices.IndexFunc(s.products, func(p Product) bool { return p.ID == id })
}

// Lookup resolves a user reference to an index. The reference is either an
// index or a unique prefix of a product ID. A reference made only of digits
// is always an index.
func (s *Store) Lookup(ref string) (int, error) {
	if i, err := strconv.Atoi(ref); err == nil {
		return i, s.checkIndex(i)
	}
	found := -1
	for i, p := range s.products {
		if ref == "" || !strings.HasPrefix(p.ID, ref) {
			continue
		}
		if found >= 0 {
			return -1, fmt.Errorf("%w: %q matches several products", ErrUnknownProduct, ref)
		}
		found = i
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownProduct, ref)
	}
	return found, nil
}
