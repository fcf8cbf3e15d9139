// Package memory - хранилище в памяти процесса с теми же контрактами, что и postgres репозитории.
// Используется при STORAGE_DRIVER=memory и в сценарных тестах сервисов.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"walt/internal/entities"
)

type Store struct {
	// mu защищает данные, txMu сериализует транзакции целиком.
	mu   sync.RWMutex
	txMu sync.Mutex

	cities      map[int64]entities.City
	drivers     map[int64]entities.Driver
	customers   map[int64]entities.Customer
	restaurants map[int64]entities.Restaurant
	deliveries  map[int64]entities.Delivery

	cityByName       map[string]int64
	driverByName     map[string]int64
	customerByName   map[string]int64
	restaurantByName map[string]int64

	lastID int64
	now    func() time.Time
}

func New() *Store {
	return &Store{
		cities:           make(map[int64]entities.City),
		drivers:          make(map[int64]entities.Driver),
		customers:        make(map[int64]entities.Customer),
		restaurants:      make(map[int64]entities.Restaurant),
		deliveries:       make(map[int64]entities.Delivery),
		cityByName:       make(map[string]int64),
		driverByName:     make(map[string]int64),
		customerByName:   make(map[string]int64),
		restaurantByName: make(map[string]int64),
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Cities() *CityRepository {
	return &CityRepository{store: s}
}

func (s *Store) Drivers() *DriverRepository {
	return &DriverRepository{store: s}
}

func (s *Store) Customers() *CustomerRepository {
	return &CustomerRepository{store: s}
}

func (s *Store) Restaurants() *RestaurantRepository {
	return &RestaurantRepository{store: s}
}

func (s *Store) Deliveries() *DeliveryRepository {
	return &DeliveryRepository{store: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

// Ping нужен healthcheck'у, хранилище в памяти доступно всегда.
func (s *Store) Ping(context.Context) error {
	return nil
}

// nextID вызывается под s.mu. id общие для всех таблиц и не переиспользуются после отката.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// mutate выполняет изменение под блокировкой и регистрирует откат, если в контексте есть транзакция.
func (s *Store) mutate(ctx context.Context, apply func() (undo func(), err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	undo, err := apply()
	if err != nil {
		return err
	}
	if tx := txFromContext(ctx); tx != nil && undo != nil {
		tx.undo = append(tx.undo, undo)
	}
	return nil
}

func sortedByID[T any](items map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(items))
	for id, item := range items {
		if keep == nil || keep(item) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, items[id])
	}
	return result
}
