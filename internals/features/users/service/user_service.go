package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"shikshasync_backend/internals/constants"
	"shikshasync_backend/internals/features/users/dto"
	"shikshasync_backend/internals/features/users/model"
	"shikshasync_backend/internals/helpers"
	"shikshasync_backend/internals/helpers/coerce"
	"shikshasync_backend/internals/helpers/customfield"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

/* =========================================
   Transform event → model
   ========================================= */

// TransformUser memetakan event user ke baris "Users". Field profil
// diambil dari custom fields: sebagian via label, sebagian via fieldId
// (lihat internals/constants). Field yang tidak ada di event dibiarkan
// nil supaya upsert tidak menimpa kolom yang sudah terisi.
func (s *UserService) TransformUser(ev *dto.UserEvent) (*model.UserModel, error) {
	if ev.UserID == "" {
		return nil, fmt.Errorf("userId kosong")
	}

	cf := ev.CustomFields
	byLabel := func(label string) *string { return customfield.ResolveByLabel(cf, label) }
	byID := func(fieldID string) *string { return customfield.ResolveByFieldID(cf, fieldID) }

	m := &model.UserModel{
		UserID:   ev.UserID,
		Username: ev.Username,
		FullName: ev.FullName(),
		Email:    ev.Email,
		Mobile:   ev.MobileString(),
		DoB:      ev.DoB,
		Gender:   ev.Gender,
		IsActive: coerce.ActiveStatus(ev.Status),

		CreatedAt: coerce.ToDate(derefAny(ev.CreatedAt)),
		UpdatedAt: coerce.ToDate(derefAny(ev.UpdatedAt)),

		// Lokasi via label (bentuk objek → id)
		StateID:    byLabel(constants.UserStateLabel),
		DistrictID: byLabel(constants.UserDistrictLabel),
		BlockID:    byLabel(constants.UserBlockLabel),
		VillageID:  byLabel(constants.UserVillageLabel),

		GuardianName:        byLabel(constants.UserGuardianNameLabel),
		CenterID:            byLabel(constants.UserCenterLabel),
		PhoneTypeAccessible: byLabel(constants.UserPhoneTypeAccessibleLabel),
		FamilyMemberDetails: byLabel(constants.UserFamilyMemberDetailsLabel),
		JobFamily:           byLabel(constants.UserJobFamilyLabel),
		PSU:                 byLabel(constants.UserPSULabel),

		// Profil via fieldId (bentuk objek → value, fallback id)
		ERPUserID:               byID(constants.UserERPUserIDFieldID),
		IsManager:               coerce.YesNo(byID(constants.UserIsManagerFieldID)),
		EmpManager:              byID(constants.UserEmpManagerFieldID),
		PreferredModeOfLearning: firstNonNil(byID(constants.UserModeOfLearningFieldID), byLabel(constants.UserPreferredLearningModeLabel)),
		WorkDomain:              byID(constants.UserWorkDomainFieldID),
		SpouseName:              byID(constants.UserSpouseNameFieldID),
		Ambition:                byID(constants.UserAmbitionFieldID),
		Class:                   byID(constants.UserClassFieldID),
		PreferredLanguage:       byID(constants.UserPreferredLanguageFieldID),
		ParentPhone:             byID(constants.UserParentPhoneFieldID),
		GuardianRelation:        byID(constants.UserGuardianRelationFieldID),
		SubjectTaught:           byID(constants.UserSubjectTaughtFieldID),
		MaritalStatus:           byID(constants.UserMaritalStatusFieldID),
		Grade:                   byID(constants.UserGradeFieldID),
		TrainingCheck:           coerce.YesNo(byID(constants.UserTrainingCheckFieldID)),
		DropOutReason:           byID(constants.UserDropOutReasonFieldID),
		OwnPhoneCheck:           coerce.YesNo(byID(constants.UserOwnPhoneCheckFieldID)),
		EnrollmentNumber:        byID(constants.UserEnrollmentNumberFieldID),
		Designation:             byID(constants.UserDesignationFieldID),
		Board:                   byID(constants.UserBoardFieldID),
		Subject:                 byID(constants.UserSubjectFieldID),
		MainSubject:             byID(constants.UserMainSubjectFieldID),
		Medium:                  byID(constants.UserMediumFieldID),
		PhoneType:               byID(constants.UserPhoneTypeFieldID),
		NumOfChildrenWorking:    byID(constants.UserNumChildrenFieldID),
		GroupMembership:         byID(constants.UserGroupMembershipFieldID),
		FatherName:              byID(constants.UserFatherNameFieldID),
		MotherName:              byID(constants.UserMotherNameFieldID),
		AccessToWhatsApp:        byID(constants.UserWhatsAppAccessFieldID),
		Program:                 byID(constants.UserProgramFieldID),
		GenderField:             byID(constants.UserGenderFieldID),
		DateOfJoining:           coerce.ToDate(derefAny(byID(constants.UserDateOfJoiningFieldID))),
		TeacherID:               byID(constants.UserTeacherIDFieldID),
		CEFRLevel:               byID(constants.UserCEFRLevelFieldID),
		Subprograms:             byID(constants.UserSubprogramsFieldID),
		OldTeacherID:            byID(constants.UserOldTeacherIDFieldID),
		Role:                    byID(constants.UserRoleFieldID),
		ClusterID:               byID(constants.UserClusterFieldID),
		Supervisors:             byID(constants.UserSupervisorsFieldID),
		DateOfLeaving:           coerce.ToDate(derefAny(byID(constants.UserDateOfLeavingFieldID))),
		ReasonForLeaving:        byID(constants.UserReasonForLeavingFieldID),
		Department:              byID(constants.UserDepartmentFieldID),

		// Kolom lokasi versi fieldId (beberapa fieldId sumber per kolom)
		FieldVillageID:  customfield.ResolveAnyByFieldID(cf, constants.UserVillageFieldIDs...),
		FieldDistrictID: customfield.ResolveAnyByFieldID(cf, constants.UserDistrictFieldIDs...),
		FieldStateID:    customfield.ResolveAnyByFieldID(cf, constants.UserStateFieldIDs...),
		FieldBlockID:    customfield.ResolveAnyByFieldID(cf, constants.UserBlockFieldIDs...),
	}

	return m, nil
}

/* =========================================
   Reconcile
   ========================================= */

// UpsertUser: update-dulu-baru-insert pada UserID. Updates memakai struct
// jadi hanya kolom non-nil yang ditulis — kolom lain tidak pernah
// ter-null-kan. Insert yang kalah balapan unique jatuh kembali ke update.
func (s *UserService) UpsertUser(ctx context.Context, m *model.UserModel) (string, error) {
	res := s.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where(`"UserID" = ?`, m.UserID).
		Updates(m)
	if res.Error != nil {
		return "", fmt.Errorf("update Users %s: %w", m.UserID, res.Error)
	}
	if res.RowsAffected > 0 {
		return "updated", nil
	}

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		if helpers.IsDuplicateKey(err) {
			// kalah balapan insert: baris sudah ada, ulangi update
			retry := s.db.WithContext(ctx).
				Model(&model.UserModel{}).
				Where(`"UserID" = ?`, m.UserID).
				Updates(m)
			if retry.Error != nil {
				return "", fmt.Errorf("retry update Users %s: %w", m.UserID, retry.Error)
			}
			return "updated", nil
		}
		return "", fmt.Errorf("insert Users %s: %w", m.UserID, err)
	}
	return "created", nil
}

// DeleteUser menghapus user dari tabel tujuan.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	res := s.db.WithContext(ctx).
		Where(`"UserID" = ?`, userID).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("[USER] hapus user %s: baris tidak ditemukan", userID)
	}
	return nil
}

// UpdateLastLogin mencatat login terakhir. lastLogin kosong/tidak valid →
// pakai waktu sekarang.
func (s *UserService) UpdateLastLogin(ctx context.Context, userID string, lastLogin *string) error {
	t := time.Now().UTC()
	if parsed := coerce.ToDate(derefAny(lastLogin)); parsed != nil {
		t = *parsed
	}
	return s.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where(`"UserID" = ?`, userID).
		Update("UserLastLogin", t).Error
}

func derefAny(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func firstNonNil(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
