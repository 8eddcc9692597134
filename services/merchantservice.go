package services

import (
	"context"
	"sort"

	"github.com/AbdelliBrahim0/DashboardAdmin/dto"
	"github.com/AbdelliBrahim0/DashboardAdmin/logger"
	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

// MergeObserver is told about every duplicate merge.
type MergeObserver interface {
	ObserveMerchantMerge(removed int)
}

var merchantMessages = map[string]string{
	"businessName.notblank":   "Business name is required",
	"ownerEmail.notblank":     "Owner email is required",
	"ownerFirstName.notblank": "Owner first name is required",
	"ownerLastName.notblank":  "Owner last name is required",
	"balance.jsonnumber":      "Balance must be a number",
}

type MerchantService struct {
	*Collection
	log      *logger.Logger
	observer MergeObserver
}

func NewMerchantService(st store.Store, log *logger.Logger, observer MergeObserver) *MerchantService {
	c := NewCollection(st, "Merchant", model.MerchantsPath)
	c.StrictDelete = true
	c.Validate = validateMerchant
	c.BeforeUpdate = keepAuthID
	return &MerchantService{Collection: c, log: log, observer: observer}
}

var merchantRules = recordRules(model.Merchant{})

func validateMerchant(rec store.Record) []string {
	in := dto.MerchantInput{
		BusinessName:   stringField(rec, model.MerchantBusinessName),
		OwnerEmail:     stringField(rec, model.MerchantOwnerEmail),
		OwnerFirstName: stringField(rec, model.MerchantOwnerFirstName),
		OwnerLastName:  stringField(rec, model.MerchantOwnerLastName),
		Balance:        rec[model.MerchantBalance],
	}
	errs := structErrors(in, merchantMessages)
	return append(errs, typeErrors(rec, merchantRules,
		model.MerchantBusinessName,
		model.MerchantOwnerEmail,
		model.MerchantOwnerFirstName,
		model.MerchantOwnerLastName,
		model.MerchantBalance,
	)...)
}

// keepAuthID pins authId to the stored value, or to the merchant id when the
// record never had one. A payload cannot change it.
func keepAuthID(id string, existing, patch store.Record) {
	authID := stringField(existing, model.MerchantAuthID)
	if authID == "" {
		authID = id
	}
	patch[model.MerchantAuthID] = authID
}

// UniqueID is the identifier the dashboard keys merchants by: the auth uid when
// present, otherwise the record id.
func UniqueID(id string, rec store.Record) string {
	if authID := stringField(rec, model.MerchantAuthID); authID != "" {
		return authID
	}
	return id
}

// FindByEmail returns the merchant owning email. When several records share the
// email they are merged into the one with the smallest id: fields are folded in
// ascending id order with later records winning, then the merged record and the
// removal of the others are written in a single batch.
func (s *MerchantService) FindByEmail(ctx context.Context, email string) (string, store.Record, error) {
	matches, err := s.store.FindEqual(ctx, s.Path, model.MerchantOwnerEmail, email)
	if err != nil {
		return "", nil, storeErr("find merchant by email", err)
	}

	switch len(matches) {
	case 0:
		return "", nil, notFound(s.Entity, email)
	case 1:
		return matches[0].ID, matches[0].Data, nil
	}
	return s.merge(ctx, email, matches)
}

func (s *MerchantService) merge(ctx context.Context, email string, matches []store.Entry) (string, store.Record, error) {
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	ids := make([]string, len(matches))
	merged := store.Record{}
	for i, m := range matches {
		ids[i] = m.ID
		merged = merged.Merge(sanitize(m.Data))
	}
	primaryID, duplicates := ids[0], ids[1:]

	s.log.Ctx(ctx).With("email", email, "ids", ids, "primary_id", primaryID).
		Warn("multiple merchants found with the same email, merging")

	err := s.store.Apply(ctx, store.Batch{
		Collection: s.Path,
		Set:        map[string]store.Record{primaryID: merged},
		Delete:     duplicates,
	})
	if err != nil {
		return "", nil, storeErr("merge merchants", err)
	}
	if s.observer != nil {
		s.observer.ObserveMerchantMerge(len(duplicates))
	}
	return primaryID, merged, nil
}

// Duplicates lists every owner email held by more than one merchant.
func (s *MerchantService) Duplicates(ctx context.Context) ([]dto.MerchantDuplicateGroup, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string][]string)
	for _, e := range entries {
		email := stringField(e.Data, model.MerchantOwnerEmail)
		if email == "" {
			continue
		}
		byEmail[email] = append(byEmail[email], e.ID)
	}

	groups := []dto.MerchantDuplicateGroup{}
	for email, ids := range byEmail {
		if len(ids) > 1 {
			sort.Strings(ids)
			groups = append(groups, dto.MerchantDuplicateGroup{OwnerEmail: email, IDs: ids})
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].OwnerEmail < groups[j].OwnerEmail })
	return groups, nil
}

// MergeDuplicates runs FindByEmail for every duplicated email and returns how
// many records were removed.
func (s *MerchantService) MergeDuplicates(ctx context.Context) (int, error) {
	groups, err := s.Duplicates(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, g := range groups {
		if _, _, err := s.FindByEmail(ctx, g.OwnerEmail); err != nil {
			return removed, err
		}
		removed += len(g.IDs) - 1
	}
	return removed, nil
}
