package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deviceCoord = models.Coordinate{Latitude: -25.4284, Longitude: -49.2733}
	ipCoord     = models.Coordinate{Latitude: -25.4200, Longitude: -49.2700}
	typedCoord  = models.Coordinate{Latitude: -25.4500, Longitude: -49.2300}
)

type originMocks struct {
	device   *mocks.MockDeviceLocator
	ip       *mocks.MockIPLocator
	geocoder *mocks.MockGeocoder
	lastFix  *mocks.MockLastFixRepo
}

func setupOriginUC(t *testing.T) (*OriginUC, originMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := originMocks{
		device:   mocks.NewMockDeviceLocator(ctrl),
		ip:       mocks.NewMockIPLocator(ctrl),
		geocoder: mocks.NewMockGeocoder(ctrl),
		lastFix:  mocks.NewMockLastFixRepo(ctrl),
	}
	uc := NewOriginUC(m.device, m.ip, m.geocoder, m.lastFix, 10*time.Second, logger.NewNopLogger())
	return uc, m
}

func TestResolveOrigin_DeviceSuccess(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.device.EXPECT().RequestDeviceLocation(gomock.Any(), 10*time.Second).Return(deviceCoord, true)
	m.lastFix.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fix models.LastFix) error {
		assert.Equal(t, deviceCoord, fix.Coordinate())
		assert.Equal(t, models.OriginSourceDevice, fix.Source)
		return nil
	})

	origin, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{UseDeviceLocation: true})

	require.NoError(t, err)
	assert.Equal(t, deviceCoord, origin.Coordinate)
	assert.Equal(t, models.OriginSourceDevice, origin.Source)
}

func TestResolveOrigin_DeviceFailsThenIP(t *testing.T) {
	uc, m := setupOriginUC(t)

	gomock.InOrder(
		m.device.EXPECT().RequestDeviceLocation(gomock.Any(), gomock.Any()).Return(models.Coordinate{}, false).Times(1),
		m.ip.EXPECT().LocateByIP(gomock.Any()).Return(ipCoord, true).Times(1),
	)
	m.lastFix.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	origin, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{UseDeviceLocation: true})

	require.NoError(t, err)
	assert.Equal(t, ipCoord, origin.Coordinate)
	assert.Equal(t, models.OriginSourceIP, origin.Source)
}

func TestResolveOrigin_DeviceAndIPFail(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.device.EXPECT().RequestDeviceLocation(gomock.Any(), gomock.Any()).Return(models.Coordinate{}, false)
	m.ip.EXPECT().LocateByIP(gomock.Any()).Return(models.Coordinate{}, false)

	_, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{UseDeviceLocation: true})

	assert.ErrorIs(t, err, ErrLocationUnavailable)
}

func TestResolveOrigin_DeviceFlagTakesPrecedenceOverTypedOrigin(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.device.EXPECT().RequestDeviceLocation(gomock.Any(), gomock.Any()).Return(deviceCoord, true)
	m.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)
	m.lastFix.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	origin, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{
		UseDeviceLocation: true,
		ManualOrigin:      "Rua XV de Novembro, Curitiba",
	})

	require.NoError(t, err)
	assert.Equal(t, models.OriginSourceDevice, origin.Source)
}

func TestResolveOrigin_TypedOrigin(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.geocoder.EXPECT().Geocode(gomock.Any(), "Rua XV de Novembro, Curitiba").Return(typedCoord, true)
	m.lastFix.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	origin, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{ManualOrigin: "  Rua XV de Novembro, Curitiba "})

	require.NoError(t, err)
	assert.Equal(t, typedCoord, origin.Coordinate)
	assert.Equal(t, models.OriginSourceManual, origin.Source)
}

func TestResolveOrigin_TypedOriginNotFoundIsTerminal(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(models.Coordinate{}, false)
	m.ip.EXPECT().LocateByIP(gomock.Any()).Times(0)

	_, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{ManualOrigin: "Nowhere"})

	assert.ErrorIs(t, err, ErrOriginNotGeocoded)
}

func TestResolveOrigin_ImplicitIP(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.ip.EXPECT().LocateByIP(gomock.Any()).Return(ipCoord, true)
	m.lastFix.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	origin, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{ManualOrigin: "   "})

	require.NoError(t, err)
	assert.Equal(t, models.OriginSourceIP, origin.Source)
}

func TestResolveOrigin_ImplicitIPFails(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.ip.EXPECT().LocateByIP(gomock.Any()).Return(models.Coordinate{}, false)

	_, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{})

	assert.ErrorIs(t, err, ErrNoOrigin)
}

func TestResolveOrigin_LastFixSaveFailureIsIgnored(t *testing.T) {
	uc, m := setupOriginUC(t)

	m.ip.EXPECT().LocateByIP(gomock.Any()).Return(ipCoord, true)
	m.lastFix.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only filesystem"))

	origin, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{})

	require.NoError(t, err)
	assert.Equal(t, ipCoord, origin.Coordinate)
}

func TestResolveOrigin_WithoutLastFixStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ip := mocks.NewMockIPLocator(ctrl)
	ip.EXPECT().LocateByIP(gomock.Any()).Return(ipCoord, true)

	uc := NewOriginUC(mocks.NewMockDeviceLocator(ctrl), ip, mocks.NewMockGeocoder(ctrl), nil, 0, logger.NewNopLogger())

	origin, err := uc.ResolveOrigin(context.Background(), models.OriginRequest{})

	require.NoError(t, err)
	assert.Equal(t, DefaultDeviceTimeout, uc.deviceTimeout)
	assert.Equal(t, ipCoord, origin.Coordinate)
}
