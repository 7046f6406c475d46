package site

import (
	"context"
	"dentalclinic-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSiteUsecase_DefaultContent(t *testing.T) {
	uc, err := NewSiteUsecase(nil)
	require.NoError(t, err)

	content, err := uc.GetContent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Dental Clinic", content.ClinicName)
	assert.Equal(t, "Your Smile, Our Priority", content.Hero.Title)
	assert.Len(t, content.Services, 3)

	contacts := make(map[string]string, len(content.Contacts))
	for _, contact := range content.Contacts {
		contacts[contact.Label] = contact.Value
	}
	assert.Equal(t, "+63 912 345 6789", contacts["Phone"])
	assert.Equal(t, "@DentalClinicPH", contacts["Facebook"])
	assert.Equal(t, "@dentalclinic_ph", contacts["Instagram"])

	require.Len(t, content.Locations, 3)
	for _, location := range content.Locations {
		assert.NotEmpty(t, location.Name)
		assert.Contains(t, location.MapEmbed, "https://www.google.com/maps/embed")
	}
}

func TestNewSiteUsecase_CustomDocument(t *testing.T) {
	document := []byte(`
clinic_name: Smile Studio
hero:
  title: Hello
locations:
  - name: Makati Branch
    address: Ayala Avenue
`)

	uc, err := NewSiteUsecase(document)
	require.NoError(t, err)

	content, err := uc.GetContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Smile Studio", content.ClinicName)
	assert.Equal(t, "Hello", content.Hero.Title)
	require.Len(t, content.Locations, 1)
	assert.Equal(t, "Ayala Avenue", content.Locations[0].Address)
}

func TestNewSiteUsecase_InvalidDocument(t *testing.T) {
	_, err := NewSiteUsecase([]byte("clinic_name: [unterminated"))

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, "site content")
}

func TestSiteUsecase_GetContentReturnsCopy(t *testing.T) {
	uc, err := NewSiteUsecase(nil)
	require.NoError(t, err)

	first, err := uc.GetContent(context.Background())
	require.NoError(t, err)
	first.Locations[0].Name = "changed"

	second, err := uc.GetContent(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second.Locations[0].Name)
}

func TestSiteUsecase_GetContentCanceled(t *testing.T) {
	uc, err := NewSiteUsecase(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = uc.GetContent(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
