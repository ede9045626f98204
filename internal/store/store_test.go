package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dra200/exwork/internal/models"
	"github.com/dra200/exwork/internal/store"
)

func TestCreateServiceAssignsIDAndTimestamp(t *testing.T) {
	st := store.New()

	created := st.CreateService(models.Service{
		Title:       "Software Development",
		Description: "Custom software",
		Icon:        "code",
		Features:    []string{"a", "b"},
	})

	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, ok := st.GetService(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestIDsAreNeverReused(t *testing.T) {
	st := store.New()

	first := st.CreateService(models.Service{Title: "one"})
	require.True(t, st.DeleteService(first.ID))

	second := st.CreateService(models.Service{Title: "two"})
	assert.Equal(t, first.ID+1, second.ID)
}

func TestGetAbsentService(t *testing.T) {
	st := store.New()

	_, ok := st.GetService(42)
	assert.False(t, ok)
}

func TestDeleteService(t *testing.T) {
	st := store.New()

	created := st.CreateService(models.Service{Title: "one"})

	assert.False(t, st.DeleteService(99))
	assert.True(t, st.DeleteService(created.ID))

	_, ok := st.GetService(created.ID)
	assert.False(t, ok)
}

func TestUpdateServicePartialPatch(t *testing.T) {
	st := store.New()

	created := st.CreateService(models.Service{
		Title:       "Old title",
		Description: "Old description",
		Icon:        "code",
		Features:    []string{"a"},
	})

	title := "New title"
	updated, ok := st.UpdateService(created.ID, store.ServicePatch{Title: &title})
	require.True(t, ok)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Old description", updated.Description)
	assert.Equal(t, "code", updated.Icon)
	assert.Equal(t, []string{"a"}, updated.Features)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateAbsentService(t *testing.T) {
	st := store.New()

	title := "whatever"
	_, ok := st.UpdateService(7, store.ServicePatch{Title: &title})
	assert.False(t, ok)
}

func TestListServicesInInsertionOrder(t *testing.T) {
	st := store.New()

	st.CreateService(models.Service{Title: "first"})
	st.CreateService(models.Service{Title: "second"})
	st.CreateService(models.Service{Title: "third"})

	items := st.ListServices()
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "third", items[2].Title)
}

func TestFeatureCRUD(t *testing.T) {
	st := store.New()

	created := st.CreateFeature(models.Feature{
		Title:       "Expertise",
		Description: "Years of experience",
		Icon:        "code",
	})
	assert.Equal(t, 1, created.ID)

	icon := "users"
	updated, ok := st.UpdateFeature(created.ID, store.FeaturePatch{Icon: &icon})
	require.True(t, ok)
	assert.Equal(t, "users", updated.Icon)
	assert.Equal(t, "Expertise", updated.Title)

	assert.True(t, st.DeleteFeature(created.ID))
	assert.False(t, st.DeleteFeature(created.ID))
}

func TestTestimonialCRUD(t *testing.T) {
	st := store.New()

	created := st.CreateTestimonial(models.Testimonial{
		Name:     "Sarah Johnson",
		Position: "CEO",
		Company:  "TechInnovate",
		Content:  "Great work",
		Rating:   5,
	})
	assert.Equal(t, 1, created.ID)

	rating := 4
	updated, ok := st.UpdateTestimonial(created.ID, store.TestimonialPatch{Rating: &rating})
	require.True(t, ok)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Sarah Johnson", updated.Name)

	assert.True(t, st.DeleteTestimonial(created.ID))
}

func TestCreateContactRequestStampsStatusAndTime(t *testing.T) {
	st := store.New()

	created := st.CreateContactRequest(models.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Service: "consulting",
		Message: "Please call me back",
		Status:  models.StatusCompleted, // must be overridden
	})

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.StatusNew, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateContactRequestStatus(t *testing.T) {
	st := store.New()

	created := st.CreateContactRequest(models.ContactRequest{Name: "Jane"})

	updated, ok := st.UpdateContactRequestStatus(created.ID, models.StatusInProgress)
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, "Jane", updated.Name)

	_, ok = st.UpdateContactRequestStatus(99, models.StatusCompleted)
	assert.False(t, ok)
}

func TestCompanyDetailsSingleton(t *testing.T) {
	st := store.New()

	_, ok := st.GetCompanyDetails()
	assert.False(t, ok)

	first := st.UpsertCompanyDetails(models.CompanyDetails{
		Address: "123 Business Avenue",
		Email:   "contact@exwork.eu",
		Phone:   "+1 (123) 456-7890",
	})
	assert.Equal(t, 1, first.ID)

	second := st.UpsertCompanyDetails(models.CompanyDetails{
		ID:      42, // ignored
		Address: "456 Other Street",
		Email:   "hello@exwork.eu",
		Phone:   "+1 (987) 654-3210",
	})
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "456 Other Street", second.Address)

	got, ok := st.GetCompanyDetails()
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestUpsertCompanyDetailsKeepsSocialLinksWhenAbsent(t *testing.T) {
	st := store.New()

	st.UpsertCompanyDetails(models.CompanyDetails{
		Address:     "123 Business Avenue",
		Email:       "contact@exwork.eu",
		Phone:       "+1 (123) 456-7890",
		SocialLinks: []string{"https://linkedin.com"},
	})

	updated := st.UpsertCompanyDetails(models.CompanyDetails{
		Address: "456 Other Street",
		Email:   "contact@exwork.eu",
		Phone:   "+1 (123) 456-7890",
	})
	assert.Equal(t, []string{"https://linkedin.com"}, updated.SocialLinks)
}

func TestSeed(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Seed("admin", "secret123"))

	user, ok := st.GetUserByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	assert.Len(t, st.ListServices(), 4)
	assert.Len(t, st.ListFeatures(), 3)
	assert.Len(t, st.ListTestimonials(), 1)

	_, ok = st.GetCompanyDetails()
	assert.True(t, ok)
}

func TestUserLookup(t *testing.T) {
	st := store.New()

	created := st.CreateUser(models.User{Username: "editor", Role: models.RoleUser})

	byID, ok := st.GetUser(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, byID)

	_, ok = st.GetUserByUsername("nobody")
	assert.False(t, ok)
}
