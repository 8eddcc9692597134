package services

import (
	"context"

	"github.com/AbdelliBrahim0/DashboardAdmin/dto"
	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

const (
	msgGiftCodeRequired = "Gift code is required"
	msgAmountPositive   = "Amount must be a positive number"
	msgIsUsedBoolean    = "isUsed must be a boolean"
	msgGiftCodeExists   = "Gift code already exists"
)

var giftCodeMessages = map[string]string{
	"code.notblank": msgGiftCodeRequired,
}

type GiftCodeService struct {
	*Collection
}

func NewGiftCodeService(st store.Store) *GiftCodeService {
	c := NewCollection(st, "Gift code", model.GiftCodesPath)
	c.StrictDelete = true
	return &GiftCodeService{Collection: c}
}

// Create stores a new unused gift code. Only code and montant are read from the
// payload.
func (s *GiftCodeService) Create(ctx context.Context, payload store.Record) (string, store.Record, error) {
	in := dto.GiftCodeInput{
		Code:    stringField(payload, model.GiftCodeCode),
		Montant: payload[model.GiftCodeMontant],
	}
	errs := structErrors(in, giftCodeMessages)
	amount, ok := positiveAmount(in.Montant)
	if !ok {
		errs = append(errs, msgAmountPositive)
	}
	if err := invalid(errs); err != nil {
		return "", nil, err
	}

	if err := s.checkUnique(ctx, in.Code, ""); err != nil {
		return "", nil, err
	}

	giftCode := model.GiftCode{
		Code:      in.Code,
		Montant:   amount,
		CreatedAt: s.now().UnixMilli(),
		IsUsed:    false,
	}
	rec, err := store.Normalize(giftCode.Fields())
	if err != nil {
		return "", nil, err
	}
	id, err := s.store.Push(ctx, s.Path, rec)
	if err != nil {
		return "", nil, storeErr("create gift code", err)
	}
	return id, rec, nil
}

// Update applies code, montant and isUsed from payload; other fields are ignored.
func (s *GiftCodeService) Update(ctx context.Context, id string, payload store.Record) (store.Record, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		in    dto.GiftCodeUpdate
		errs  []string
		patch = store.Record{}
	)
	if raw, ok := payload[model.GiftCodeCode]; ok && raw != nil {
		if code, isStr := raw.(string); isStr {
			in.Code = &code
		} else {
			errs = append(errs, msgGiftCodeRequired)
		}
	}
	if codeErrs := structErrors(in, giftCodeMessages); len(codeErrs) > 0 {
		errs = append(errs, codeErrs...)
	} else if in.Code != nil {
		patch[model.GiftCodeCode] = *in.Code
	}

	if raw, ok := payload[model.GiftCodeMontant]; ok && raw != nil {
		amount, ok := positiveAmount(raw)
		if !ok {
			errs = append(errs, msgAmountPositive)
		} else {
			patch[model.GiftCodeMontant] = amount
		}
	}

	if raw, ok := payload[model.GiftCodeIsUsed]; ok && raw != nil {
		used, isBool := raw.(bool)
		if !isBool {
			errs = append(errs, msgIsUsedBoolean)
		} else {
			patch[model.GiftCodeIsUsed] = used
		}
	}

	if err := invalid(errs); err != nil {
		return nil, err
	}
	if in.Code != nil {
		if err := s.checkUnique(ctx, *in.Code, id); err != nil {
			return nil, err
		}
	}
	if len(patch) == 0 {
		return existing, nil
	}

	patch, err = store.Normalize(patch)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, s.Path, id, patch); err != nil {
		return nil, storeErr("update gift code", err)
	}
	return existing.Merge(patch), nil
}

// checkUnique fails when another gift code than selfID already uses code.
func (s *GiftCodeService) checkUnique(ctx context.Context, code, selfID string) error {
	matches, err := s.store.FindEqual(ctx, s.Path, model.GiftCodeCode, code)
	if err != nil {
		return storeErr("find gift code", err)
	}
	for _, m := range matches {
		if m.ID != selfID {
			return &ConflictError{Message: msgGiftCodeExists}
		}
	}
	return nil
}
