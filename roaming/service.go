package roaming

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"evroam/internal"
	"evroam/internal/config"
	"evroam/models"
	"evroam/oicp"
	"evroam/topology"
)

const featureName = "RoamingPull"

// Snapshot is the published state of one completed pull cycle. It is
// replaced atomically and never mutated after publication.
type Snapshot struct {
	Topologies map[string]*topology.Topology
	Statuses   map[string]models.ChargePointStatus
	PulledAt   time.Time
	DataStatus oicp.StatusCode
}

// Service pulls EVSE data and status from the roaming endpoints, rebuilds
// the per-operator topologies and publishes the result for readers.
type Service struct {
	conf     *config.Config
	log      internal.LogHandler
	codec    *oicp.Codec
	client   *Client
	snapshot atomic.Pointer[Snapshot]
	stop     chan struct{}
}

func NewService(conf *config.Config, log internal.LogHandler) *Service {
	return &Service{
		conf:   conf,
		log:    log,
		codec:  oicp.NewCodec(log),
		client: NewClient(log),
		stop:   make(chan struct{}),
	}
}

// Snapshot returns the latest published snapshot, nil before the first
// completed pull.
func (s *Service) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

func (s *Service) Start() {
	interval := time.Duration(s.conf.Roaming.PullInterval) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		s.pull()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.pull()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Service) Stop() {
	close(s.stop)
}

func (s *Service) pull() {
	trackingID := uuid.New().String()
	snapshot := &Snapshot{
		Topologies: make(map[string]*topology.Topology),
		Statuses:   make(map[string]models.ChargePointStatus),
		PulledAt:   time.Now(),
		DataStatus: oicp.Success(),
	}

	data, err := s.pullData(trackingID)
	if err != nil {
		s.log.Error("pulling evse data", err)
		snapshot.DataStatus = oicp.LocalFault(err.Error())
	} else {
		snapshot.DataStatus = data.Status()
		for i := range data.Operators {
			group := &data.Operators[i]
			t := s.buildTopology(group)
			if t != nil {
				snapshot.Topologies[t.OperatorID] = t
			}
		}
	}

	statuses, err := s.pullStatuses(trackingID)
	if err != nil {
		s.log.Error("pulling evse statuses", err)
	} else {
		for i := range statuses.Operators {
			for _, st := range statuses.Operators[i].Statuses {
				snapshot.Statuses[st.EvseID] = st
			}
		}
	}

	s.snapshot.Store(snapshot)
	s.log.FeatureEvent(featureName, trackingID, fmt.Sprintf(
		"pulled %d operators, %d statuses", len(snapshot.Topologies), len(snapshot.Statuses)))
}

func (s *Service) pullData(trackingID string) (*oicp.EvseData, error) {
	if s.conf.Roaming.DataEndpoint == "" {
		return nil, fmt.Errorf("no data endpoint configured")
	}
	req, err := oicp.EncodePullEvseDataRequest(s.conf.Roaming.ProviderID)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Post(s.conf.Roaming.DataEndpoint, req, trackingID)
	if err != nil {
		return nil, err
	}
	return s.codec.DecodeEvseData(bytes.NewReader(resp))
}

func (s *Service) pullStatuses(trackingID string) (*oicp.EvseStatuses, error) {
	if s.conf.Roaming.StatusEndpoint == "" {
		return nil, fmt.Errorf("no status endpoint configured")
	}
	req, err := oicp.EncodePullEvseStatusRequest(s.conf.Roaming.ProviderID)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Post(s.conf.Roaming.StatusEndpoint, req, trackingID)
	if err != nil {
		return nil, err
	}
	return s.codec.DecodeEvseStatuses(bytes.NewReader(resp))
}

// buildTopology reconciles one operator group. Records that cannot be
// placed are skipped with a warning; the rest of the group still builds.
func (s *Service) buildTopology(group *oicp.OperatorEvseData) *topology.Topology {
	op, err := oicp.ParseOperatorID(group.OperatorID)
	if err != nil {
		s.log.Error(fmt.Sprintf("skipping operator group %q", group.OperatorID), err)
		return nil
	}
	builder := topology.NewBuilder(op, s.log)
	for i := range group.Records {
		rec := &group.Records[i]
		evseID, err := oicp.ParseEvseID(rec.EvseID)
		if err != nil {
			s.log.Warn(fmt.Sprintf("operator %s: skipping record %s: %v", group.OperatorID, rec.EvseID, err))
			continue
		}
		poolID, err := evseID.PoolEquivalent()
		if err != nil {
			s.log.Warn(fmt.Sprintf("operator %s: no pool for %s: %v", group.OperatorID, rec.EvseID, err))
			continue
		}
		addr := rec.Address
		geo := rec.GeoLocation
		if err = builder.AddOrUpdate(poolID.String(), &addr, &geo, rec.ChargingStationID, rec.EvseID); err != nil {
			s.log.Warn(fmt.Sprintf("operator %s: skipping record %s: %v", group.OperatorID, rec.EvseID, err))
		}
	}
	t := builder.Build()
	if len(t.Collisions) > 0 {
		s.log.Warn(fmt.Sprintf("operator %s: %d station id collisions", t.OperatorID, len(t.Collisions)))
	}
	if len(t.Unresolved) > 0 {
		s.log.Warn(fmt.Sprintf("operator %s: %d stations unresolved", t.OperatorID, len(t.Unresolved)))
	}
	return t
}
