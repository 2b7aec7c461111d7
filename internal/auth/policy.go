package auth

import "github.com/spec-kit/pizza-store/internal/domain"

// selfEditableFields are the columns a non-manager may change on
// their own record.
var selfEditableFields = map[domain.UserField]struct{}{
	domain.FieldPhoneNum:      {},
	domain.FieldPassword:      {},
	domain.FieldFavoriteItems: {},
}

// CanMutate decides whether a caller with the given role may overwrite
// the given field on the target record. Managers may mutate any field
// of any record, including login and role. Everyone else may touch only
// the self-editable fields, and only on their own record.
func CanMutate(role domain.Role, field domain.UserField, targetIsSelf bool) bool {
	if role.IsManager() {
		return true
	}
	if !targetIsSelf {
		return false
	}
	_, ok := selfEditableFields[field]
	return ok
}

// MutableFields lists the fields the given role may edit, in menu
// order. For managers the target does not matter.
func MutableFields(role domain.Role, targetIsSelf bool) []domain.UserField {
	if role.IsManager() {
		return []domain.UserField{
			domain.FieldPhoneNum,
			domain.FieldPassword,
			domain.FieldFavoriteItems,
			domain.FieldLogin,
			domain.FieldRole,
		}
	}
	if !targetIsSelf {
		return nil
	}
	return []domain.UserField{
		domain.FieldPhoneNum,
		domain.FieldPassword,
		domain.FieldFavoriteItems,
	}
}
