package store

import (
	"sort"
	"sync"
	"time"

	"github.com/dra200/exwork/internal/models"
)

// Store owns every content collection and its id counter. All state lives
// in memory for the lifetime of the process; a restart returns the store
// to seed data. Construct one with New and pass it to the HTTP layer.
//
// Fiber runs handlers concurrently, so every collection access goes
// through the mutex. Ids are assigned from per-kind counters starting at 1
// and are never reused, not even after a delete.
type Store struct {
	mu sync.RWMutex

	users           map[int]models.User
	services        map[int]models.Service
	features        map[int]models.Feature
	testimonials    map[int]models.Testimonial
	contactRequests map[int]models.ContactRequest
	companyDetails  map[int]models.CompanyDetails

	userSeq           int
	serviceSeq        int
	featureSeq        int
	testimonialSeq    int
	contactRequestSeq int
	companyDetailsSeq int
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:           make(map[int]models.User),
		services:        make(map[int]models.Service),
		features:        make(map[int]models.Feature),
		testimonials:    make(map[int]models.Testimonial),
		contactRequests: make(map[int]models.ContactRequest),
		companyDetails:  make(map[int]models.CompanyDetails),
	}
}

// Users

// CreateUser stores a new user and assigns its id.
func (s *Store) CreateUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	user.ID = s.userSeq
	s.users[user.ID] = user
	return user
}

// GetUser returns the user for the given id, if present.
func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

// GetUserByUsername looks a user up by its unique username.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// Services

// ServicePatch carries the fields of a service update. Nil fields keep
// their current value.
type ServicePatch struct {
	Title       *string
	Description *string
	Icon        *string
	Features    *[]string
}

// ListServices returns all services in id order.
func (s *Store) ListServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Service, 0, len(s.services))
	for _, item := range s.services {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// GetService returns the service for the given id, if present.
func (s *Store) GetService(id int) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.services[id]
	return item, ok
}

// CreateService stores a new service, assigning its id and creation time.
func (s *Store) CreateService(service models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.serviceSeq++
	service.ID = s.serviceSeq
	service.CreatedAt = time.Now()
	s.services[service.ID] = service
	return service
}

// UpdateService merges the patch into an existing service. The second
// return value is false when no service exists for the id.
func (s *Store) UpdateService(id int, patch ServicePatch) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.services[id]
	if !ok {
		return models.Service{}, false
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Icon != nil {
		item.Icon = *patch.Icon
	}
	if patch.Features != nil {
		item.Features = *patch.Features
	}
	s.services[id] = item
	return item, true
}

// DeleteService removes a service, reporting whether it existed.
func (s *Store) DeleteService(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.services[id]
	delete(s.services, id)
	return ok
}

// Features

// FeaturePatch carries the fields of a feature update. Nil fields keep
// their current value.
type FeaturePatch struct {
	Title       *string
	Description *string
	Icon        *string
}

// ListFeatures returns all features in id order.
func (s *Store) ListFeatures() []models.Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Feature, 0, len(s.features))
	for _, item := range s.features {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// GetFeature returns the feature for the given id, if present.
func (s *Store) GetFeature(id int) (models.Feature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.features[id]
	return item, ok
}

// CreateFeature stores a new feature and assigns its id.
func (s *Store) CreateFeature(feature models.Feature) models.Feature {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.featureSeq++
	feature.ID = s.featureSeq
	s.features[feature.ID] = feature
	return feature
}

// UpdateFeature merges the patch into an existing feature.
func (s *Store) UpdateFeature(id int, patch FeaturePatch) (models.Feature, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.features[id]
	if !ok {
		return models.Feature{}, false
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Icon != nil {
		item.Icon = *patch.Icon
	}
	s.features[id] = item
	return item, true
}

// DeleteFeature removes a feature, reporting whether it existed.
func (s *Store) DeleteFeature(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.features[id]
	delete(s.features, id)
	return ok
}

// Testimonials

// TestimonialPatch carries the fields of a testimonial update. Nil fields
// keep their current value.
type TestimonialPatch struct {
	Name     *string
	Position *string
	Company  *string
	Content  *string
	Rating   *int
}

// ListTestimonials returns all testimonials in id order.
func (s *Store) ListTestimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Testimonial, 0, len(s.testimonials))
	for _, item := range s.testimonials {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// GetTestimonial returns the testimonial for the given id, if present.
func (s *Store) GetTestimonial(id int) (models.Testimonial, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.testimonials[id]
	return item, ok
}

// CreateTestimonial stores a new testimonial and assigns its id.
func (s *Store) CreateTestimonial(testimonial models.Testimonial) models.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.testimonialSeq++
	testimonial.ID = s.testimonialSeq
	s.testimonials[testimonial.ID] = testimonial
	return testimonial
}

// UpdateTestimonial merges the patch into an existing testimonial.
func (s *Store) UpdateTestimonial(id int, patch TestimonialPatch) (models.Testimonial, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.testimonials[id]
	if !ok {
		return models.Testimonial{}, false
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Position != nil {
		item.Position = *patch.Position
	}
	if patch.Company != nil {
		item.Company = *patch.Company
	}
	if patch.Content != nil {
		item.Content = *patch.Content
	}
	if patch.Rating != nil {
		item.Rating = *patch.Rating
	}
	s.testimonials[id] = item
	return item, true
}

// DeleteTestimonial removes a testimonial, reporting whether it existed.
func (s *Store) DeleteTestimonial(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.testimonials[id]
	delete(s.testimonials, id)
	return ok
}

// Contact requests

// ListContactRequests returns all contact requests in id order.
func (s *Store) ListContactRequests() []models.ContactRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.ContactRequest, 0, len(s.contactRequests))
	for _, item := range s.contactRequests {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// GetContactRequest returns the contact request for the given id, if present.
func (s *Store) GetContactRequest(id int) (models.ContactRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.contactRequests[id]
	return item, ok
}

// CreateContactRequest stores a new contact request. The id, creation
// time and initial "new" status are assigned here; whatever the caller
// put in those fields is discarded.
func (s *Store) CreateContactRequest(request models.ContactRequest) models.ContactRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contactRequestSeq++
	request.ID = s.contactRequestSeq
	request.Status = models.StatusNew
	request.CreatedAt = time.Now()
	s.contactRequests[request.ID] = request
	return request
}

// UpdateContactRequestStatus changes only the status of an existing
// contact request. The caller is responsible for validating the value.
func (s *Store) UpdateContactRequestStatus(id int, status models.RequestStatus) (models.ContactRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.contactRequests[id]
	if !ok {
		return models.ContactRequest{}, false
	}
	item.Status = status
	s.contactRequests[id] = item
	return item, true
}

// DeleteContactRequest removes a contact request, reporting whether it existed.
func (s *Store) DeleteContactRequest(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.contactRequests[id]
	delete(s.contactRequests, id)
	return ok
}

// Company details

// GetCompanyDetails returns the company details singleton, if seeded.
func (s *Store) GetCompanyDetails() (models.CompanyDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.companyDetails {
		return item, true
	}
	return models.CompanyDetails{}, false
}

// UpsertCompanyDetails creates the singleton when absent, otherwise
// merges the input into the existing record. The singleton keeps its
// original id forever; any id on the input is ignored.
func (s *Store) UpsertCompanyDetails(details models.CompanyDetails) models.CompanyDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.companyDetails {
		existing.Address = details.Address
		existing.Email = details.Email
		existing.Phone = details.Phone
		if details.SocialLinks != nil {
			existing.SocialLinks = details.SocialLinks
		}
		s.companyDetails[id] = existing
		return existing
	}

	s.companyDetailsSeq++
	details.ID = s.companyDetailsSeq
	s.companyDetails[details.ID] = details
	return details
}
