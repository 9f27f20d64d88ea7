package store

import (
	"context"
	"fmt"
	"sync"

	"CloseByRentals/models"
)

// MemoryPropertyStore keeps properties in a process-local slice guarded by a
// mutex. Insert assigns ids with a monotonic suffix of the current count.
type MemoryPropertyStore struct {
	mu         sync.RWMutex
	properties []models.Property
}

func NewMemoryPropertyStore(seed []models.Property) *MemoryPropertyStore {
	properties := make([]models.Property, len(seed))
	copy(properties, seed)
	return &MemoryPropertyStore{properties: properties}
}

func (s *MemoryPropertyStore) GetAll(_ context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return out, nil
}

func (s *MemoryPropertyStore) Insert(_ context.Context, p models.Property) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = fmt.Sprintf("p%d", len(s.properties)+1)
	s.properties = append(s.properties, p)
	return p, nil
}

type MemoryAmenityStore struct {
	mu        sync.RWMutex
	amenities []models.Amenity
}

func NewMemoryAmenityStore(seed []models.Amenity) *MemoryAmenityStore {
	amenities := make([]models.Amenity, len(seed))
	copy(amenities, seed)
	return &MemoryAmenityStore{amenities: amenities}
}

func (s *MemoryAmenityStore) GetAll(_ context.Context) ([]models.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Amenity, len(s.amenities))
	copy(out, s.amenities)
	return out, nil
}

func (s *MemoryAmenityStore) Insert(_ context.Context, a models.Amenity) (models.Amenity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = fmt.Sprintf("a%d", len(s.amenities)+1)
	s.amenities = append(s.amenities, a)
	return a, nil
}
