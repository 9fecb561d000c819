package services

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/repositories"
)

var ErrInvalidAddress = errors.New("invalid ip address")

// NetworkReader defines read-only operations for networks.
type NetworkReader interface {
	GetByIPAddress(ctx context.Context, ipAddress string) (*models.Network, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Network, error)
}

// NetworkWriter defines write operations for networks and their user joins.
type NetworkWriter interface {
	Create(ctx context.Context, network *models.Network) error
	AttachUser(ctx context.Context, userID, networkID int64) error
	DeleteJoinsByUser(ctx context.Context, userID int64) error
}

// NetworkService records the addresses users connect from.
type NetworkService struct {
	reader NetworkReader
	writer NetworkWriter
}

// NewNetworkService creates a new NetworkService.
func NewNetworkService(reader NetworkReader, writer NetworkWriter) *NetworkService {
	return &NetworkService{reader: reader, writer: writer}
}

// ParseAddress parses an IPv4 or IPv6 address, with or without a port, and
// returns its canonical and normalized textual forms. IPv4-mapped IPv6
// addresses are treated as IPv4 and zones are dropped.
func ParseAddress(raw string) (address, normalized string, err error) {
	raw = strings.TrimSpace(raw)

	addr, perr := netip.ParseAddr(raw)
	if perr != nil {
		ap, aperr := netip.ParseAddrPort(raw)
		if aperr != nil {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidAddress, raw)
		}
		addr = ap.Addr()
	}
	addr = addr.Unmap().WithZone("")

	if addr.Is4() {
		b := addr.As4()
		return addr.String(), fmt.Sprintf("%03d.%03d.%03d.%03d", b[0], b[1], b[2], b[3]), nil
	}
	return addr.String(), addr.StringExpanded(), nil
}

// AddAddressIfAbsent records that the user connected from ip. The network row
// is created on first sight and the user is attached to it at most once.
func (s *NetworkService) AddAddressIfAbsent(ctx context.Context, userID int64, ip string) (*models.Network, error) {
	address, normalized, err := ParseAddress(ip)
	if err != nil {
		return nil, err
	}

	network, err := s.findOrCreate(ctx, address, normalized)
	if err != nil {
		return nil, err
	}

	if err := s.writer.AttachUser(ctx, userID, network.ID); err != nil {
		logger.Log.Errorw("failed to attach network", "user_id", userID, "network_id", network.ID, "error", err)
		return nil, err
	}
	return network, nil
}

func (s *NetworkService) findOrCreate(ctx context.Context, address, normalized string) (*models.Network, error) {
	network, err := s.reader.GetByIPAddress(ctx, address)
	if err != nil {
		logger.Log.Errorw("failed to get network", "ip_address", address, "error", err)
		return nil, err
	}
	if network != nil {
		return network, nil
	}

	network = &models.Network{IPAddress: address, IPHash: normalized, Active: true}
	err = s.writer.Create(ctx, network)
	if err == nil {
		return network, nil
	}
	if !errors.Is(err, repositories.ErrConflict) {
		logger.Log.Errorw("failed to save network", "ip_address", address, "error", err)
		return nil, err
	}

	winner, rerr := s.reader.GetByIPAddress(ctx, address)
	if rerr != nil {
		return nil, rerr
	}
	if winner == nil {
		return nil, err
	}
	return winner, nil
}

// NetworksForUser returns the networks the user has connected from.
func (s *NetworkService) NetworksForUser(ctx context.Context, userID int64) ([]models.Network, error) {
	networks, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list networks", "user_id", userID, "error", err)
		return nil, err
	}
	return networks, nil
}
