package estimate

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// VendorStorageKey is the well-known key the vendor collection is
// persisted under.
const VendorStorageKey = "wall_covering_vendors"

var (
	ErrVendorNameRequired = errors.New("vendor name must not be empty")
	ErrNonPositivePrice   = errors.New("vendor price must be greater than zero")
	ErrUnknownPricingUnit = errors.New("unknown pricing unit")
	ErrUnknownLengthUnit  = errors.New("unknown roll length unit")
)

// Vendor is one stored vendor record. The struct tags define the
// persisted field names.
type Vendor struct {
	ID             string      `msgpack:"id"`
	Name           string      `msgpack:"name"`
	Price          float64     `msgpack:"price"`
	PriceUnit      PricingUnit `msgpack:"priceUnit"`
	RollLength     float64     `msgpack:"rollLength"`
	RollLengthUnit LengthUnit  `msgpack:"rollLengthUnit"`
}

// VendorFields carries everything needed to create a vendor except the
// id, which the store allocates.
type VendorFields struct {
	Name           string
	Price          float64
	PriceUnit      PricingUnit
	RollLength     float64
	RollLengthUnit LengthUnit
}

// VendorPatch is a partial update. Nil fields are left unchanged.
type VendorPatch struct {
	Name           *string
	Price          *float64
	PriceUnit      *PricingUnit
	RollLength     *float64
	RollLengthUnit *LengthUnit
}

func validateVendorFields(fields VendorFields) error {
	if fields.Name == "" {
		return ErrVendorNameRequired
	}
	if fields.Price <= 0 {
		return ErrNonPositivePrice
	}
	if _, ok := fields.PriceUnit.Family(); !ok {
		return ErrUnknownPricingUnit
	}
	if fields.RollLength <= 0 {
		return ErrNonPositiveRollLength
	}
	if _, ok := ParseLengthUnit(string(fields.RollLengthUnit)); !ok {
		return ErrUnknownLengthUnit
	}
	return nil
}

// Blob is the backing slot the vendor collection is persisted in: one
// value under one key. Load returns nil with no error when the key has
// never been written.
type Blob interface {
	Load(key string) ([]byte, error)
	Store(key string, data []byte) error
}

// VendorStore owns the vendor collection. All access goes through the
// store; reads hand out snapshots. Updates are read-modify-write over
// the whole collection, serialized by the mutex (last-writer-wins,
// which is fine for a single interactive user).
type VendorStore struct {
	blob  Blob
	mutex sync.Mutex
}

func NewVendorStore(blob Blob) *VendorStore {
	return &VendorStore{blob: blob}
}

// load decodes the stored collection. A missing or malformed blob
// reads as an empty list: vendor data is non-critical and recoverable
// by re-entry, so decode failures are deliberately swallowed.
func (s *VendorStore) load() []Vendor {
	data, err := s.blob.Load(VendorStorageKey)
	if err != nil || len(data) == 0 {
		return nil
	}
	var vendors []Vendor
	if err := msgpack.Unmarshal(data, &vendors); err != nil {
		return nil
	}
	return vendors
}

func (s *VendorStore) persist(vendors []Vendor) error {
	data, err := msgpack.Marshal(vendors)
	if err != nil {
		return err
	}
	return s.blob.Store(VendorStorageKey, data)
}

// Vendors returns all vendors in insertion order, or an empty slice if
// none are stored.
func (s *VendorStore) Vendors() []Vendor {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.load()
}

// Vendor looks up a single vendor by id.
func (s *VendorStore) Vendor(id string) (Vendor, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, vendor := range s.load() {
		if vendor.ID == id {
			return vendor, true
		}
	}
	return Vendor{}, false
}

// Create validates the fields, allocates a fresh id, appends the new
// vendor and persists the collection.
func (s *VendorStore) Create(fields VendorFields) (Vendor, error) {
	if err := validateVendorFields(fields); err != nil {
		return Vendor{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	vendor := Vendor{
		ID:             uuid.New().String(),
		Name:           fields.Name,
		Price:          fields.Price,
		PriceUnit:      fields.PriceUnit,
		RollLength:     fields.RollLength,
		RollLengthUnit: fields.RollLengthUnit,
	}
	vendors := append(s.load(), vendor)
	if err := s.persist(vendors); err != nil {
		return Vendor{}, err
	}
	return vendor, nil
}

// Update merges the patch into the vendor with the given id. It
// returns false when the id is unknown. The merged record is validated
// before anything is persisted.
func (s *VendorStore) Update(id string, patch VendorPatch) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	vendors := s.load()
	for i := range vendors {
		if vendors[i].ID != id {
			continue
		}
		merged := vendors[i]
		if patch.Name != nil {
			merged.Name = *patch.Name
		}
		if patch.Price != nil {
			merged.Price = *patch.Price
		}
		if patch.PriceUnit != nil {
			merged.PriceUnit = *patch.PriceUnit
		}
		if patch.RollLength != nil {
			merged.RollLength = *patch.RollLength
		}
		if patch.RollLengthUnit != nil {
			merged.RollLengthUnit = *patch.RollLengthUnit
		}
		if err := validateVendorFields(VendorFields{
			Name:           merged.Name,
			Price:          merged.Price,
			PriceUnit:      merged.PriceUnit,
			RollLength:     merged.RollLength,
			RollLengthUnit: merged.RollLengthUnit,
		}); err != nil {
			return false, err
		}
		vendors[i] = merged
		if err := s.persist(vendors); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Delete removes the vendor with the given id, returning false when
// the id is unknown.
func (s *VendorStore) Delete(id string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	vendors := s.load()
	for i := range vendors {
		if vendors[i].ID != id {
			continue
		}
		vendors = append(vendors[:i], vendors[i+1:]...)
		if err := s.persist(vendors); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// MemoryBlob is an in-memory Blob, used in tests and as the default
// when no database is configured.
type MemoryBlob struct {
	mutex sync.Mutex
	data  map[string][]byte
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{data: make(map[string][]byte)}
}

func (b *MemoryBlob) Load(key string) ([]byte, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.data[key], nil
}

func (b *MemoryBlob) Store(key string, data []byte) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	b.data[key] = stored
	return nil
}
