// internals/features/users/model/user_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel: baris tujuan "Users". Kolom profil diisi dari custom fields
// event via mapping statis di internals/constants (fieldId tak terdaftar
// diabaikan, tidak disimpan).
type UserModel struct {
	UserID   string  `gorm:"type:uuid;primaryKey;column:UserID" json:"user_id"`
	Username *string `gorm:"column:UserName" json:"username,omitempty"`
	FullName *string `gorm:"column:UserFullName" json:"full_name,omitempty"`
	Email    *string `gorm:"column:UserEmail" json:"email,omitempty"`
	DoB      *string `gorm:"type:date;column:UserDoB" json:"dob,omitempty"`
	Mobile   *string `gorm:"column:UserMobile" json:"mobile,omitempty"`
	Gender   *string `gorm:"column:UserGender" json:"gender,omitempty"`
	IsActive *bool   `gorm:"column:UserIsActive" json:"is_active,omitempty"`

	// Lokasi (dari custom field label STATE/DISTRICT/BLOCK/VILLAGE)
	StateID    *string `gorm:"column:UserStateID" json:"state_id,omitempty"`
	DistrictID *string `gorm:"column:UserDistrictID" json:"district_id,omitempty"`
	BlockID    *string `gorm:"column:UserBlockID" json:"block_id,omitempty"`
	VillageID  *string `gorm:"column:UserVillageID" json:"village_id,omitempty"`

	PreferredModeOfLearning *string `gorm:"column:UserPreferredModeOfLearning" json:"preferred_mode_of_learning,omitempty"`
	MotherName              *string `gorm:"column:UserMotherName" json:"mother_name,omitempty"`
	WorkDomain              *string `gorm:"column:UserWorkDomain" json:"work_domain,omitempty"`
	FatherName              *string `gorm:"column:UserFatherName" json:"father_name,omitempty"`
	SpouseName              *string `gorm:"column:UserSpouseName" json:"spouse_name,omitempty"`
	PhoneType               *string `gorm:"column:UserPhoneType" json:"phone_type,omitempty"`
	Ambition                *string `gorm:"column:UserWhatDoYouWantToBecome" json:"ambition,omitempty"`
	Class                   *string `gorm:"column:UserClass" json:"class,omitempty"`
	PreferredLanguage       *string `gorm:"column:UserPreferredLanguage" json:"preferred_language,omitempty"`
	ParentPhone             *string `gorm:"column:UserParentPhone" json:"parent_phone,omitempty"`
	GuardianRelation        *string `gorm:"column:UserGuardianRelation" json:"guardian_relation,omitempty"`
	GuardianName            *string `gorm:"column:UserGuardianName" json:"guardian_name,omitempty"`
	SubjectTaught           *string `gorm:"column:UserSubjectTaught" json:"subject_taught,omitempty"`
	MaritalStatus           *string `gorm:"column:UserMaritalStatus" json:"marital_status,omitempty"`
	Grade                   *string `gorm:"column:UserGrade" json:"grade,omitempty"`
	TrainingCheck           *bool   `gorm:"column:UserTrainingCheck" json:"training_check,omitempty"`
	DropOutReason           *string `gorm:"column:UserDropOutReason" json:"drop_out_reason,omitempty"`
	OwnPhoneCheck           *bool   `gorm:"column:UserOwnPhoneCheck" json:"own_phone_check,omitempty"`
	EnrollmentNumber        *string `gorm:"column:UserEnrollmentNumber" json:"enrollment_number,omitempty"`
	Designation             *string `gorm:"column:UserDesignation" json:"designation,omitempty"`
	Board                   *string `gorm:"column:UserBoard" json:"board,omitempty"`
	Subject                 *string `gorm:"column:UserSubject" json:"subject,omitempty"`
	MainSubject             *string `gorm:"column:UserMainSubject" json:"main_subject,omitempty"`
	Medium                  *string `gorm:"column:UserMedium" json:"medium,omitempty"`
	NumOfChildrenWorking    *string `gorm:"column:UserNumOfChildrenWorkingWith" json:"num_of_children_working_with,omitempty"`
	JobFamily               *string `gorm:"column:JobFamily" json:"job_family,omitempty"`
	PSU                     *string `gorm:"column:PSU" json:"psu,omitempty"`
	GroupMembership         *string `gorm:"column:GroupMembership" json:"group_membership,omitempty"`
	EmpManager              *string `gorm:"column:EMPManager" json:"emp_manager,omitempty"`
	ERPUserID               *string `gorm:"column:ERPUserID" json:"erp_user_id,omitempty"`
	IsManager               *bool   `gorm:"column:IsManager" json:"is_manager,omitempty"`
	AccessToWhatsApp        *string `gorm:"column:UserAccessToWhatsApp" json:"access_to_whatsapp,omitempty"`
	Program                 *string `gorm:"column:UserProgram" json:"program,omitempty"`
	GenderField             *string `gorm:"column:UserGenderField" json:"gender_field,omitempty"`
	DateOfJoining           *time.Time `gorm:"type:date;column:UserDateOfJoining" json:"date_of_joining,omitempty"`
	TeacherID               *string `gorm:"column:UserTeacherID" json:"teacher_id,omitempty"`
	CEFRLevel               *string `gorm:"column:UserCEFRLevel" json:"cefr_level,omitempty"`
	Subprograms             *string `gorm:"column:UserSubprograms" json:"subprograms,omitempty"`
	OldTeacherID            *string `gorm:"column:UserOldTeacherID" json:"old_teacher_id,omitempty"`
	Role                    *string `gorm:"column:UserRole" json:"role,omitempty"`
	ClusterID               *string `gorm:"column:UserClusterId" json:"cluster_id,omitempty"`
	Supervisors             *string `gorm:"column:UserSupervisors" json:"supervisors,omitempty"`
	DateOfLeaving           *time.Time `gorm:"type:date;column:UserDateOfLeaving" json:"date_of_leaving,omitempty"`
	ReasonForLeaving        *string `gorm:"column:UserReasonForLeaving" json:"reason_for_leaving,omitempty"`
	Department              *string `gorm:"column:UserDepartment" json:"department,omitempty"`

	// Lokasi versi fieldId (shiksha) — kolom teks terpisah dari label lama
	FieldVillageID  *string `gorm:"column:UserVillageId" json:"field_village_id,omitempty"`
	FieldDistrictID *string `gorm:"column:UserDistrictId" json:"field_district_id,omitempty"`
	FieldStateID    *string `gorm:"column:UserStateId" json:"field_state_id,omitempty"`
	FieldBlockID    *string `gorm:"column:UserBlockId" json:"field_block_id,omitempty"`

	CenterID            *string        `gorm:"column:UserCenterID" json:"center_id,omitempty"`
	PhoneTypeAccessible *string        `gorm:"column:UserPhoneTypeAccessible" json:"phone_type_accessible,omitempty"`
	FamilyMemberDetails *string        `gorm:"column:UserFamilyMemberDetails" json:"family_member_details,omitempty"`
	CustomField         datatypes.JSON `gorm:"type:jsonb;column:UserCustomField" json:"custom_field,omitempty"`

	LastLogin *time.Time `gorm:"type:timestamptz;column:UserLastLogin" json:"last_login,omitempty"`

	CreatedAt *time.Time `gorm:"column:CreatedAt" json:"created_at,omitempty"`
	UpdatedAt *time.Time `gorm:"column:UpdatedAt" json:"updated_at,omitempty"`
	CreatedBy *string    `gorm:"column:CreatedBy" json:"created_by,omitempty"`
	UpdatedBy *string    `gorm:"column:UpdatedBy" json:"updated_by,omitempty"`
}

func (UserModel) TableName() string { return "Users" }
