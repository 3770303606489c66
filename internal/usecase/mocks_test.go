package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicbook/internal/domain/entity"

	"gorm.io/gorm"
)

// mockStore satisfies repository.Transactor without a database. Its mutex
// stands in for the row lock the real store takes on the doctor_locations
// row: transactions run one at a time, so the conflict re-check inside a
// booking observes every previously committed appointment.
type mockStore struct {
	mu sync.Mutex
}

func (s *mockStore) DB(ctx context.Context) *gorm.DB { return nil }

func (s *mockStore) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(nil)
}

type mockDoctorRepo struct {
	doctors map[int]*entity.Doctor
	nextID  int
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int]*entity.Doctor), nextID: 1}
}

func (m *mockDoctorRepo) Create(_ *gorm.DB, doctor *entity.Doctor) error {
	doctor.ID = m.nextID
	m.nextID++
	stored := *doctor
	m.doctors[doctor.ID] = &stored
	return nil
}

func (m *mockDoctorRepo) FindByID(_ *gorm.DB, id int) (*entity.Doctor, error) {
	if d, ok := m.doctors[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindByName(_ *gorm.DB, firstName, lastName string) (*entity.Doctor, error) {
	for _, d := range m.doctors {
		if d.FirstName == firstName && d.LastName == lastName {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindAll(_ *gorm.DB) ([]entity.Doctor, error) {
	var result []entity.Doctor
	for id := 1; id < m.nextID; id++ {
		if d, ok := m.doctors[id]; ok {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDoctorRepo) Update(_ *gorm.DB, doctor *entity.Doctor) error {
	stored := *doctor
	m.doctors[doctor.ID] = &stored
	return nil
}

func (m *mockDoctorRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

type mockLocationRepo struct {
	locations map[int]*entity.Location
	pairs     *mockDoctorLocationRepo
	nextID    int
}

func newMockLocationRepo(pairs *mockDoctorLocationRepo) *mockLocationRepo {
	return &mockLocationRepo{
		locations: make(map[int]*entity.Location),
		pairs:     pairs,
		nextID:    1,
	}
}

func (m *mockLocationRepo) Create(_ *gorm.DB, location *entity.Location) error {
	location.ID = m.nextID
	m.nextID++
	stored := *location
	m.locations[location.ID] = &stored
	return nil
}

func (m *mockLocationRepo) FindByID(_ *gorm.DB, id int) (*entity.Location, error) {
	if l, ok := m.locations[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, nil
}

func (m *mockLocationRepo) FindByAddress(_ *gorm.DB, address string) (*entity.Location, error) {
	for _, l := range m.locations {
		if l.Address == address {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockLocationRepo) FindAll(_ *gorm.DB) ([]entity.Location, error) {
	var result []entity.Location
	for id := 1; id < m.nextID; id++ {
		if l, ok := m.locations[id]; ok {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLocationRepo) FindByDoctorID(_ *gorm.DB, doctorID int) ([]entity.Location, error) {
	var result []entity.Location
	for _, pair := range m.pairs.all() {
		if pair.DoctorID != doctorID {
			continue
		}
		if l, ok := m.locations[pair.LocationID]; ok {
			result = append(result, *l)
		}
	}
	return result, nil
}

type mockDoctorLocationRepo struct {
	pairs  map[int]*entity.DoctorLocation
	nextID int
}

func newMockDoctorLocationRepo() *mockDoctorLocationRepo {
	return &mockDoctorLocationRepo{pairs: make(map[int]*entity.DoctorLocation), nextID: 1}
}

// add seeds a pair directly, bypassing Create.
func (m *mockDoctorLocationRepo) add(doctorID, locationID int) *entity.DoctorLocation {
	pair := &entity.DoctorLocation{ID: m.nextID, DoctorID: doctorID, LocationID: locationID}
	m.nextID++
	m.pairs[pair.ID] = pair
	return pair
}

func (m *mockDoctorLocationRepo) all() []entity.DoctorLocation {
	var result []entity.DoctorLocation
	for id := 1; id < m.nextID; id++ {
		if p, ok := m.pairs[id]; ok {
			result = append(result, *p)
		}
	}
	return result
}

func (m *mockDoctorLocationRepo) Create(_ *gorm.DB, pair *entity.DoctorLocation) error {
	pair.ID = m.nextID
	m.nextID++
	stored := *pair
	m.pairs[pair.ID] = &stored
	return nil
}

func (m *mockDoctorLocationRepo) FindByID(_ *gorm.DB, id int) (*entity.DoctorLocation, error) {
	if p, ok := m.pairs[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (m *mockDoctorLocationRepo) FindByIDForUpdate(db *gorm.DB, id int) (*entity.DoctorLocation, error) {
	// Locking is provided by mockStore serializing transactions.
	return m.FindByID(db, id)
}

func (m *mockDoctorLocationRepo) FindByDoctorAndLocation(_ *gorm.DB, doctorID, locationID int) (*entity.DoctorLocation, error) {
	for _, p := range m.pairs {
		if p.DoctorID == doctorID && p.LocationID == locationID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDoctorLocationRepo) Delete(_ *gorm.DB, doctorID, locationID int) (int64, error) {
	for id, p := range m.pairs {
		if p.DoctorID == doctorID && p.LocationID == locationID {
			delete(m.pairs, id)
			return 1, nil
		}
	}
	return 0, nil
}

type mockAvailabilitySlotRepo struct {
	slots  map[int]*entity.AvailabilitySlot
	pairs  *mockDoctorLocationRepo
	nextID int
}

func newMockAvailabilitySlotRepo(pairs *mockDoctorLocationRepo) *mockAvailabilitySlotRepo {
	return &mockAvailabilitySlotRepo{
		slots:  make(map[int]*entity.AvailabilitySlot),
		pairs:  pairs,
		nextID: 1,
	}
}

func (m *mockAvailabilitySlotRepo) Create(_ *gorm.DB, slot *entity.AvailabilitySlot) error {
	slot.ID = m.nextID
	m.nextID++
	stored := *slot
	m.slots[slot.ID] = &stored
	return nil
}

func (m *mockAvailabilitySlotRepo) FindByID(_ *gorm.DB, id int) (*entity.AvailabilitySlot, error) {
	if s, ok := m.slots[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (m *mockAvailabilitySlotRepo) FindByDoctorID(_ *gorm.DB, doctorID int) ([]entity.AvailabilitySlot, error) {
	var result []entity.AvailabilitySlot
	for id := 1; id < m.nextID; id++ {
		s, ok := m.slots[id]
		if !ok {
			continue
		}
		pair, _ := m.pairs.FindByID(nil, s.DoctorLocationID)
		if pair != nil && pair.DoctorID == doctorID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockAvailabilitySlotRepo) FindByDoctorLocationAndDay(_ *gorm.DB, doctorLocationID int, dayOfWeek string) ([]entity.AvailabilitySlot, error) {
	var result []entity.AvailabilitySlot
	for id := 1; id < m.nextID; id++ {
		s, ok := m.slots[id]
		if !ok {
			continue
		}
		if s.DoctorLocationID == doctorLocationID && s.DayOfWeek == dayOfWeek {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockAvailabilitySlotRepo) DeleteByIDAndDoctor(_ *gorm.DB, id, doctorID int) (int64, error) {
	s, ok := m.slots[id]
	if !ok {
		return 0, nil
	}
	pair, _ := m.pairs.FindByID(nil, s.DoctorLocationID)
	if pair == nil || pair.DoctorID != doctorID {
		return 0, nil
	}
	delete(m.slots, id)
	return 1, nil
}

type mockAppointmentRepo struct {
	appointments map[int]*entity.Appointment
	pairs        *mockDoctorLocationRepo
	nextID       int

	// failCreate, when set, makes Create return this error; used to drive
	// the transaction-failure path.
	failCreate error
}

func newMockAppointmentRepo(pairs *mockDoctorLocationRepo) *mockAppointmentRepo {
	return &mockAppointmentRepo{
		appointments: make(map[int]*entity.Appointment),
		pairs:        pairs,
		nextID:       1,
	}
}

func (m *mockAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	appointment.ID = m.nextID
	m.nextID++
	stored := *appointment
	m.appointments[appointment.ID] = &stored
	return nil
}

func (m *mockAppointmentRepo) FindByID(_ *gorm.DB, id int) (*entity.Appointment, error) {
	if a, ok := m.appointments[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByDoctorID(_ *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for id := 1; id < m.nextID; id++ {
		a, ok := m.appointments[id]
		if !ok {
			continue
		}
		pair, _ := m.pairs.FindByID(nil, a.DoctorLocationID)
		if pair != nil && pair.DoctorID == doctorID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindByDoctorLocationAndDate(_ *gorm.DB, doctorLocationID int, date time.Time) ([]entity.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var result []entity.Appointment
	for id := 1; id < m.nextID; id++ {
		a, ok := m.appointments[id]
		if !ok {
			continue
		}
		if a.DoctorLocationID == doctorLocationID &&
			!a.StartTime.Before(dayStart) && a.StartTime.Before(dayEnd) {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindOverlapping(_ *gorm.DB, doctorLocationID int, start, end time.Time) ([]entity.Appointment, error) {
	requested := entity.TimeWindow{Start: start, End: end}

	var result []entity.Appointment
	for id := 1; id < m.nextID; id++ {
		a, ok := m.appointments[id]
		if !ok {
			continue
		}
		if a.DoctorLocationID == doctorLocationID && a.Window().Overlaps(requested) {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.appointments[id]; !ok {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

// mockSlotCache records cache traffic so tests can assert on hits and
// invalidations.
type mockSlotCache struct {
	mu                sync.Mutex
	entries           map[string][]entity.TimeWindow
	sets              int
	invalidations     int
	pairInvalidations int
}

func newMockSlotCache() *mockSlotCache {
	return &mockSlotCache{entries: make(map[string][]entity.TimeWindow)}
}

func slotKey(doctorLocationID int, date time.Time) string {
	return fmt.Sprintf("%d:%s", doctorLocationID, date.Format("2006-01-02"))
}

func (c *mockSlotCache) Get(_ context.Context, doctorLocationID int, date time.Time) ([]entity.TimeWindow, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots, ok := c.entries[slotKey(doctorLocationID, date)]
	return slots, ok
}

func (c *mockSlotCache) Set(_ context.Context, doctorLocationID int, date time.Time, slots []entity.TimeWindow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[slotKey(doctorLocationID, date)] = slots
	c.sets++
}

func (c *mockSlotCache) Invalidate(_ context.Context, doctorLocationID int, date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, slotKey(doctorLocationID, date))
	c.invalidations++
}

func (c *mockSlotCache) InvalidatePair(_ context.Context, doctorLocationID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := fmt.Sprintf("%d:", doctorLocationID)
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
	c.pairInvalidations++
}
