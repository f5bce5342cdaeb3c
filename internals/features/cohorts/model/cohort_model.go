// internals/features/cohorts/model/cohort_model.go
package model

import "time"

// CohortModel: baris tujuan "Cohort". Type adalah nilai turunan
// (regularCenter/remoteCenter untuk induk, regularBatch/remoteBatch untuk
// anak berdasarkan tipe induknya) dan dihitung ulang setiap transform.
type CohortModel struct {
	CohortID   string     `gorm:"type:uuid;primaryKey;column:CohortID" json:"cohort_id"`
	TenantID   *string    `gorm:"type:uuid;column:TenantID" json:"tenant_id,omitempty"`
	CohortName *string    `gorm:"column:CohortName" json:"cohort_name,omitempty"`
	CreatedOn  *time.Time `gorm:"column:CreatedOn" json:"created_on,omitempty"`
	ParentID   *string    `gorm:"type:uuid;column:ParentID" json:"parent_id,omitempty"`
	Type       *string    `gorm:"column:Type" json:"type,omitempty"`
	Status     *string    `gorm:"column:Status;default:active" json:"status,omitempty"`

	// Kolom lokasi menyimpan kode numerik (sumber bisa kirim UUID/kode string)
	CoStateID    *int `gorm:"column:CoStateID" json:"co_state_id,omitempty"`
	CoDistrictID *int `gorm:"column:CoDistrictID" json:"co_district_id,omitempty"`
	CoBlockID    *int `gorm:"column:CoBlockID" json:"co_block_id,omitempty"`
	CoVillageID  *int `gorm:"column:CoVillageID" json:"co_village_id,omitempty"`

	CoBoard         *string `gorm:"column:CoBoard" json:"co_board,omitempty"`
	CoSubject       *string `gorm:"column:CoSubject" json:"co_subject,omitempty"`
	CoGrade         *string `gorm:"column:CoGrade" json:"co_grade,omitempty"`
	CoMedium        *string `gorm:"column:CoMedium" json:"co_medium,omitempty"`
	CoIndustry      *string `gorm:"column:CoIndustry" json:"co_industry,omitempty"`
	CoGoogleMapLink *string `gorm:"column:CoGoogleMapLink" json:"co_google_map_link,omitempty"`
	CoProgram       *string `gorm:"column:CoProgram" json:"co_program,omitempty"`
	CoCluster       *string `gorm:"column:CoCluster" json:"co_cluster,omitempty"`
	CoLongitude     *string `gorm:"column:CoLongitude" json:"co_longitude,omitempty"`
	CoLatitude      *string `gorm:"column:CoLatitude" json:"co_latitude,omitempty"`
	CoSchoolType    *string `gorm:"column:CoSchoolType" json:"co_school_type,omitempty"`

	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updatedAt;autoUpdateTime" json:"updated_at"`
}

func (CohortModel) TableName() string { return "Cohort" }
