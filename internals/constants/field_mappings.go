// internals/constants/field_mappings.go
package constants

/* =========================================================
   Mapping statis fieldId (UUID) → kolom tujuan.
   Tabel ini adalah satu-satunya sumber kebenaran mapping;
   fieldId yang tidak terdaftar diabaikan, tidak disimpan.
========================================================= */

// Field "TYPE_OF_CENTER" — penentu klasifikasi cohort (center/batch).
const TypeOfCenterFieldID = "000a7469-2721-4c7b-8180-52812a0f6fe7"

// FieldId → kolom Cohort tujuan (dipakai backfill FieldValues → Cohort).
var CohortFieldColumn = map[string]string{
	TypeOfCenterFieldID:                    "Type",
	"f93c0ac3-f827-4794-9457-441fa1057b42": "CoBoard",
	"69a9dba2-e05e-40cd-a39c-047b9b676b5c": "CoSubject",
	"5a2dbb89-bbe6-4aa8-b541-93e01ab07b70": "CoGrade",
	"7b214a17-5a07-4ee0-bedc-271429862d30": "CoMedium",
	"e5277d7b-e7ef-4a11-9a54-a8e6e7975383": "CoIndustry",
	"e9f8acbb-b10d-4b46-9584-f5ec453c250e": "CoGoogleMapLink",
	"5fce49b6-cd23-44f5-b87b-4ae0cbe2e328": "CoProgram",
	"c3357b23-1394-48a9-afc5-7589873365ae": "CoCluster",
	"fe466e4e-193b-4d01-863d-cf861d8d5bf5": "CoLongitude",
	"fd466e4e-193b-4d01-863d-cf861d8d5bf4": "CoLatitude",
	"c4ad6f2a-f4b3-4f66-b1be-fcbe8ff607e3": "CoSchoolType",
	// Beberapa fieldId berbeda menunjuk kolom lokasi yang sama (duplikat di sumber).
	"d4ad6f2a-f4b3-4f66-b1be-fcbe8ff607f3": "CoDistrictID",
	"62340eaa-40fb-48b9-ba90-dcaa78be778e": "CoDistrictID",
	"b4ad6f2a-f4b3-4f66-b1be-fcbe8ff607e3": "CoStateID",
	"800265b1-9058-482a-94f4-726197e1dfe4": "CoStateID",
	"e4bc6f2a-f4b3-4f66-b1be-fcbe8ff607f3": "CoBlockID",
	"1e3e76e2-7f77-4fd7-a79f-abe5c33d4d08": "CoBlockID",
	"e4de6f2a-f4b3-4f66-b1be-fcbe8ff607d3": "CoVillageID",
	"2f7e6930-0bc2-4e69-8bd4-dde205fa5471": "CoVillageID",
	"5cfacade-9d56-4a1e-b4e9-cc8e8c6b04c5": "CoVillageID",
}

// Kolom lokasi Cohort (tujuan menyimpan kode numerik).
var CohortLocationColumns = map[string]bool{
	"CoStateID":    true,
	"CoDistrictID": true,
	"CoBlockID":    true,
	"CoVillageID":  true,
}

// FieldId hirarki lokasi (untuk lookup kode↔UUID).
const (
	StateFieldID    = "6469c3ac-8c46-49d7-852a-00f9589737c5"
	DistrictFieldID = "b61edfc6-3787-4079-86d3-37262bf23a9e"
	BlockFieldID    = "4aab68ae-8382-43aa-a45a-e9b239319857"
	VillageFieldID  = "8e9bb321-ff99-4e2e-9269-61e863dd0c54"
)

// Kode lokasi tetap → UUID master. Dicek lebih dulu sebelum jatuh ke
// ekstraksi digit; juga dipakai terbalik (UUID → kode) saat sumber
// mengirim UUID untuk kolom numerik.
var LocationCodeToUUID = map[string]map[string]string{
	StateFieldID: {
		"24": "cc737326-7d1f-4f4e-88cf-39f48df2c280",
	},
	DistrictFieldID: {
		"473": "c168bb3c-4c2d-4321-b1b7-4c1c19dc54e7",
	},
	BlockFieldID: {
		"3613": "359e1a0a-d7c8-4e03-b022-938f0f6f7f83",
	},
	VillageFieldID: {
		"737311": "8eb4f5c2-c0b9-4191-94e3-14c738246f82",
	},
}

// LocationCodeForUUID: lookup terbalik LocationCodeToUUID.
func LocationCodeForUUID(fieldID, uuid string) (string, bool) {
	for code, u := range LocationCodeToUUID[fieldID] {
		if u == uuid {
			return code, true
		}
	}
	return "", false
}

// Field "SLOTS" milik CohortMembers — hanya dipakai jalur migrasi.
const CohortMemberSlotFieldID = "f3658b23-1394-48a9-afc5-7589874465af"

/* =========================================================
   FieldId profil User → kolom Users (transform live event)
========================================================= */

const (
	UserERPUserIDFieldID           = "93de5cc5-9437-4ca7-95f3-3b2f31b24093"
	UserIsManagerFieldID           = "8e8ab9b7-8ce0-4e6e-bf7e-0477a80734c8"
	UserEmpManagerFieldID          = "27589b6d-6ece-457a-8d50-d15a3db02bf6"
	UserModeOfLearningFieldID      = "7b43db0a-f4c3-4c77-919f-622509ca7add"
	UserWorkDomainFieldID          = "2914814c-2a0f-4422-aff8-6bd3b09d3069"
	UserSpouseNameFieldID          = "0dd4cf0b-b774-439a-9997-5437cd78bfcd"
	UserAmbitionFieldID            = "a8d3d878-9b92-4231-b25c-b22726985238"
	UserClassFieldID               = "9a4ad601-023b-467f-bbbe-bda1885f87c7"
	UserPreferredLanguageFieldID   = "4b9d798d-e8f2-4ae5-b177-a57655aa5d1c"
	UserParentPhoneFieldID         = "7ecaa845-901a-4ac7-a136-eed087f3b85b"
	UserGuardianRelationFieldID    = "3a7bf305-6bac-4377-bf09-f38af866105c"
	UserSubjectTaughtFieldID       = "abb7f3fe-f7fa-47be-9d28-5747dd3159f2"
	UserMaritalStatusFieldID       = "ff472647-6c40-42e6-b200-dc74b241e915"
	UserGradeFieldID               = "5a2dbb89-bbe6-4aa8-b541-93e01ab07b70"
	UserTrainingCheckFieldID       = "0be5a8c6-92e9-4b7c-ac01-345131b06118"
	UserDropOutReasonFieldID       = "4f48571b-88fd-43b9-acb3-91afda7901ac"
	UserOwnPhoneCheckFieldID       = "d119d92f-fab7-4c7d-8370-8b40b5ed23dc"
	UserEnrollmentNumberFieldID    = "e2f1fcbc-a76a-4b51-a092-ae4823bc45fd"
	UserDesignationFieldID         = "4fc098c5-bec5-4afc-a15d-093805b05119"
	UserBoardFieldID               = "f93c0ac3-f827-4794-9457-441fa1057b42"
	UserSubjectFieldID             = "69a9dba2-e05e-40cd-a39c-047b9b676b5c"
	UserMainSubjectFieldID         = "935bfb34-9be7-4676-b9cc-cec1ec4c0a2c"
	UserMediumFieldID              = "7b214a17-5a07-4ee0-bedc-271429862d30"
	UserPhoneTypeFieldID           = "da594b2e-c645-4a96-af15-6e2d24587c9a"
	UserNumChildrenFieldID         = "a4c2dace-e052-4e78-b6ad-9ffcc035c578"
	UserGroupMembershipFieldID     = "29c36dd1-315c-46d9-bf6a-f1858ae71c33"
	UserFatherNameFieldID          = "679f4a27-09f9-4f78-85a0-9fe8bfd3ef18"
	UserMotherNameFieldID          = "d3644b9e-e9df-4f08-ae7b-1a6b4413fedf"
	UserWhatsAppAccessFieldID      = "53a44ba9-c8ed-43db-9fee-c2c81ae707b9"
	UserProgramFieldID             = "5fce49b6-cd23-44f5-b87b-4ae0cbe2e328"
	UserGenderFieldID              = "08ab0a4e-4a72-498b-ad43-38fcb5e47586"
	UserDateOfJoiningFieldID       = "cec6c953-71b6-4c53-98b8-582aaa6008b5"
	UserTeacherIDFieldID           = "f9f17574-4227-4ba3-a485-f8b1269ff086"
	UserCEFRLevelFieldID           = "e2395f11-a53d-4fb6-ab89-eae6367156f5"
	UserSubprogramsFieldID         = "074643e8-8d53-4f14-956b-f7d0216f63e7"
	UserOldTeacherIDFieldID        = "434fcadb-8508-42a9-bbed-03be19e8dfdb"
	UserRoleFieldID                = "4e4864d3-7049-49d0-b52a-4c9fbe7774b8"
	UserClusterFieldID             = "c3357b23-1394-48a9-afc5-7589873365ae"
	UserSupervisorsFieldID         = "26c55f7f-c691-440d-8c7f-88480c72f07b"
	UserDateOfLeavingFieldID       = "4fa37e71-bbd6-4dd1-9523-510edf63afb7"
	UserReasonForLeavingFieldID    = "11fe3a6b-3b32-43e4-bc50-1fc72bf5dd54"
	UserDepartmentFieldID          = "0d501559-3bb2-44ed-8e33-850f6ed22666"
	UserJobFamilyLabel             = "JOB_FAMILY"
	UserPSULabel                   = "PSU"
	UserStateLabel                 = "STATE"
	UserDistrictLabel              = "DISTRICT"
	UserBlockLabel                 = "BLOCK"
	UserVillageLabel               = "VILLAGE"
	UserGuardianNameLabel          = "NAME_OF_GUARDIAN"
	UserPreferredLearningModeLabel = "WHAT_IS_YOUR_PREFERRED_MODE_OF_LEARNING"
	UserCenterLabel                = "CENTER"
	UserPhoneTypeAccessibleLabel   = "TYPE_OF_PHONE_ACCESSIBLE"
	UserFamilyMemberDetailsLabel   = "FAMILY_MEMBER_DETAILS"
)

// FieldId duplikat lokasi milik User (dipilih yang pertama terisi).
var (
	UserVillageFieldIDs  = []string{"e4de6f2a-f4b3-4f66-b1be-fcbe8ff607d3", "5cfacade-9d56-4a1e-b4e9-cc8e8c6b04c5", "2f7e6930-0bc2-4e69-8bd4-dde205fa5471"}
	UserDistrictFieldIDs = []string{"d4ad6f2a-f4b3-4f66-b1be-fcbe8ff607f3", "62340eaa-40fb-48b9-ba90-dcaa78be778e"}
	UserStateFieldIDs    = []string{"800265b1-9058-482a-94f4-726197e1dfe4", "b4ad6f2a-f4b3-4f66-b1be-fcbe8ff607e3"}
	UserBlockFieldIDs    = []string{"1e3e76e2-7f77-4fd7-a79f-abe5c33d4d08", "e4bc6f2a-f4b3-4f66-b1be-fcbe8ff607f3"}
)
