package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/repositories"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		raw        string
		address    string
		normalized string
		wantErr    bool
	}{
		{raw: "10.0.0.1", address: "10.0.0.1", normalized: "010.000.000.001"},
		{raw: " 192.168.1.20 ", address: "192.168.1.20", normalized: "192.168.001.020"},
		{raw: "192.168.1.20:8080", address: "192.168.1.20", normalized: "192.168.001.020"},
		{raw: "::ffff:10.0.0.1", address: "10.0.0.1", normalized: "010.000.000.001"},
		{raw: "2001:db8::1", address: "2001:db8::1", normalized: "2001:0db8:0000:0000:0000:0000:0000:0001"},
		{raw: "[2001:db8::1]:443", address: "2001:db8::1", normalized: "2001:0db8:0000:0000:0000:0000:0000:0001"},
		{raw: "fe80::1%eth0", address: "fe80::1", normalized: "fe80:0000:0000:0000:0000:0000:0000:0001"},
		{raw: "", wantErr: true},
		{raw: "localhost", wantErr: true},
		{raw: "300.1.1.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			address, normalized, err := ParseAddress(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.address, address)
			assert.Equal(t, tt.normalized, normalized)
		})
	}
}

func TestNetworkService_AddAddressIfAbsent(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*NetworkService, *MockNetworkReader, *MockNetworkWriter) {
		ctrl := gomock.NewController(t)
		reader := NewMockNetworkReader(ctrl)
		writer := NewMockNetworkWriter(ctrl)
		return NewNetworkService(reader, writer), reader, writer
	}

	t.Run("KnownNetwork", func(t *testing.T) {
		svc, reader, writer := setup(t)
		known := &models.Network{ID: 3, IPAddress: "10.0.0.1"}

		reader.EXPECT().GetByIPAddress(ctx, "10.0.0.1").Return(known, nil)
		writer.EXPECT().AttachUser(ctx, int64(1), int64(3)).Return(nil)

		network, err := svc.AddAddressIfAbsent(ctx, 1, "10.0.0.1:5555")
		require.NoError(t, err)
		assert.Same(t, known, network)
	})

	t.Run("NewNetwork", func(t *testing.T) {
		svc, reader, writer := setup(t)

		reader.EXPECT().GetByIPAddress(ctx, "10.0.0.1").Return(nil, nil)
		writer.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n *models.Network) error {
			assert.Equal(t, "010.000.000.001", n.IPHash)
			assert.True(t, n.Active)
			n.ID = 4
			return nil
		})
		writer.EXPECT().AttachUser(ctx, int64(1), int64(4)).Return(nil)

		network, err := svc.AddAddressIfAbsent(ctx, 1, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, int64(4), network.ID)
	})

	t.Run("ConcurrentCreateRereads", func(t *testing.T) {
		svc, reader, writer := setup(t)
		winner := &models.Network{ID: 5, IPAddress: "10.0.0.1"}

		gomock.InOrder(
			reader.EXPECT().GetByIPAddress(ctx, "10.0.0.1").Return(nil, nil),
			writer.EXPECT().Create(ctx, gomock.Any()).Return(repositories.ErrConflict),
			reader.EXPECT().GetByIPAddress(ctx, "10.0.0.1").Return(winner, nil),
			writer.EXPECT().AttachUser(ctx, int64(1), int64(5)).Return(nil),
		)

		network, err := svc.AddAddressIfAbsent(ctx, 1, "10.0.0.1")
		require.NoError(t, err)
		assert.Same(t, winner, network)
	})

	t.Run("InvalidAddress", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.AddAddressIfAbsent(ctx, 1, "not-an-ip")
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("AttachFailure", func(t *testing.T) {
		svc, reader, writer := setup(t)

		reader.EXPECT().GetByIPAddress(ctx, "10.0.0.1").Return(&models.Network{ID: 3}, nil)
		writer.EXPECT().AttachUser(ctx, int64(1), int64(3)).Return(errors.New("fk violation"))

		_, err := svc.AddAddressIfAbsent(ctx, 1, "10.0.0.1")
		assert.EqualError(t, err, "fk violation")
	})
}

func TestNetworkService_NetworksForUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reader := NewMockNetworkReader(ctrl)
	svc := NewNetworkService(reader, NewMockNetworkWriter(ctrl))

	reader.EXPECT().ListByUser(ctx, int64(1)).Return([]models.Network{{ID: 3}, {ID: 4}}, nil)
	networks, err := svc.NetworksForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, networks, 2)
}
