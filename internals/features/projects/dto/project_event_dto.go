package dto

import "encoding/json"

// =========================
// Event masuk (family projects)
// =========================

// ProjectPlannerEvent: payload COURSE_PLANNER_PROJECT_CREATED. Proyek
// datang terbungkus template beserta daftar task template-nya.
type ProjectPlannerEvent struct {
	Solution             *ProjectSolution  `json:"solution,omitempty"`
	Program              *ProjectProgram   `json:"program,omitempty"`
	ProjectTemplate      *ProjectTemplate  `json:"projectTemplate,omitempty"`
	ProjectTemplateTasks []TemplateTask    `json:"projectTemplateTasks,omitempty"`
}

type ProjectSolution struct {
	SolutionID string `json:"solutionId"`
}

type ProjectProgram struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

type ProjectTemplate struct {
	Title    *string              `json:"title,omitempty"`
	MetaData *ProjectTemplateMeta `json:"metaData,omitempty"`
}

type ProjectTemplateMeta struct {
	Board   *string `json:"board,omitempty"`
	Medium  *string `json:"medium,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Class   *string `json:"class,omitempty"`
	Type    *string `json:"type,omitempty"`
}

// TemplateTask: task template. ParentTaskID berisi externalId induknya,
// bukan _id — service yang menerjemahkan lewat peta externalId -> _id.
type TemplateTask struct {
	ID                string          `json:"_id"`
	ExternalID        *string         `json:"externalId,omitempty"`
	ParentTaskID      *string         `json:"parentTaskId,omitempty"`
	Name              *string         `json:"name,omitempty"`
	StartDate         *string         `json:"startDate,omitempty"`
	EndDate           *string         `json:"endDate,omitempty"`
	LearningResources json.RawMessage `json:"learningResources,omitempty"`
}

// ProjectSyncEvent: payload PROJECT_SYNC_CREATED / PROJECT_SYNC_UPDATED /
// PROJECT_TASK_UPDATED (format langsung, tanpa template).
type ProjectSyncEvent struct {
	SolutionID string     `json:"solutionId"`
	EntityID   *string    `json:"entityId,omitempty"`
	TenantID   *string    `json:"tenantId,omitempty"`
	CreatedAt  *string    `json:"createdAt,omitempty"`
	UpdatedAt  *string    `json:"updatedAt,omitempty"`
	Tasks      []SyncTask `json:"tasks,omitempty"`
}

// SyncTask: task dalam format langsung. Tanggal bisa ada di
// metaInformation (format DD-MM-YYYY) atau langsung di task.
type SyncTask struct {
	ID                string          `json:"_id"`
	ReferenceID       *string         `json:"referenceId,omitempty"`
	Name              *string         `json:"name,omitempty"`
	Status            *string         `json:"status,omitempty"`
	StartDate         *string         `json:"startDate,omitempty"`
	EndDate           *string         `json:"endDate,omitempty"`
	MetaInformation   *TaskMeta       `json:"metaInformation,omitempty"`
	LearningResources json.RawMessage `json:"learningResources,omitempty"`
	CreatedBy         *string         `json:"createdBy,omitempty"`
	UpdatedBy         *string         `json:"updatedBy,omitempty"`
	Children          []SyncTask      `json:"children,omitempty"`
}

type TaskMeta struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}
