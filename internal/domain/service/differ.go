package service

import (
	"fmt"

	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
	"github.com/lite-lake/simply-dns/internal/simply"
)

type DifferService struct{}

func NewDifferService() *DifferService {
	return &DifferService{}
}

// PlanZone appends the changes needed to make the zone's remote records
// match its declared records. Records pair up by "TYPE:name" key: a missing
// key becomes a create, a drifted pair an update. Deletes only happen for
// pruning zones, which also drop duplicate remote copies of a declared key;
// NS and SOA records are never pruned. Declared records are visited in
// config order and remote leftovers in service order, so the plan is stable
// for a given input.
func (s *DifferService) PlanZone(plan *valueobject.Plan, zone *entity.Zone, remote []simply.Record, scope *valueobject.Scope) {
	remoteByKey := make(map[string][]simply.Record)
	for _, r := range remote {
		key := entity.RecordKey(r.Type, r.Name)
		remoteByKey[key] = append(remoteByKey[key], r)
	}

	declared := make(map[string]bool)
	for i := range zone.Records {
		spec := zone.Records[i]
		if !scope.Matches(zone.Domain, spec.Type, spec.Name) {
			continue
		}
		key := spec.Key()
		declared[key] = true

		matches := remoteByKey[key]
		if len(matches) == 0 {
			plan.AddChange(valueobject.NewChange(
				valueobject.ChangeTypeCreate,
				zone.Domain,
				key,
				nil,
				spec,
				[]string{fmt.Sprintf("create dns record %s in %s", key, zone.Domain)},
			))
			continue
		}

		if !RecordMatches(&spec, matches[0]) {
			plan.AddChange(valueobject.NewChange(
				valueobject.ChangeTypeUpdate,
				zone.Domain,
				key,
				matches[0],
				spec,
				[]string{fmt.Sprintf("update dns record %s in %s", key, zone.Domain)},
			))
		}

		if zone.Prune {
			for _, extra := range matches[1:] {
				plan.AddChange(valueobject.NewChange(
					valueobject.ChangeTypeDelete,
					zone.Domain,
					key,
					extra,
					nil,
					[]string{fmt.Sprintf("delete duplicate dns record %s in %s", key, zone.Domain)},
				))
			}
		}
	}

	if !zone.Prune {
		return
	}
	for _, r := range remote {
		key := entity.RecordKey(r.Type, r.Name)
		if declared[key] || entity.PruneExempt(r.Type) {
			continue
		}
		if !scope.Matches(zone.Domain, r.Type, r.Name) {
			continue
		}
		plan.AddChange(valueobject.NewChange(
			valueobject.ChangeTypeDelete,
			zone.Domain,
			key,
			r,
			nil,
			[]string{fmt.Sprintf("delete dns record %s in %s", key, zone.Domain)},
		))
	}
}

// RecordMatches reports whether the remote record already satisfies the
// declared spec. A nil spec TTL or priority means "whatever the service
// picked" and never counts as drift; comments are not compared because the
// update endpoint cannot change them.
func RecordMatches(spec *entity.RecordSpec, remote simply.Record) bool {
	if spec.Data != remote.Data {
		return false
	}
	if spec.TTL != nil && *spec.TTL != remote.TTL {
		return false
	}
	if spec.Priority != nil {
		if remote.Priority == nil || *remote.Priority != *spec.Priority {
			return false
		}
	}
	return true
}
