package services

import "github.com/terraincognita07/mindguard/internal/models"

func IsCounselorUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleCounselor
}

func IsMemberUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleMember
}

// CanViewMemberData allows the member themself and the counselor they assigned.
func CanViewMemberData(viewer *models.User, member *models.User) bool {
	if viewer == nil || member == nil {
		return false
	}
	if viewer.ID == member.ID {
		return true
	}
	return IsCounselorUser(viewer) && member.CounselorID != nil && *member.CounselorID == viewer.ID
}
