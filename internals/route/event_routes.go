// file: internals/route/event_routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "shikshasync_backend/internals/features/attendance/controller"
	backfillController "shikshasync_backend/internals/features/backfill/controller"
	cohortController "shikshasync_backend/internals/features/cohorts/controller"
	cohortService "shikshasync_backend/internals/features/cohorts/service"
	projectController "shikshasync_backend/internals/features/projects/controller"
	trackerController "shikshasync_backend/internals/features/trackers/controller"
	userController "shikshasync_backend/internals/features/users/controller"
	"shikshasync_backend/internals/helpers"
	"shikshasync_backend/internals/middlewares"
)

// eventDispatcher memegang semua controller event dan memetakan
// (family, eventType) → handler, meniru routing topik consumer lama.
type eventDispatcher struct {
	users      *userController.UserEventController
	cohorts    *cohortController.CohortEventController
	attendance *attendanceController.AttendanceEventController
	trackers   *trackerController.TrackerEventController
	projects   *projectController.ProjectEventController
}

func SetupRoutes(app *fiber.App, db, sourceDB *gorm.DB, memberColTypes *cohortService.ColumnTypeSnapshot) {
	BaseRoutes(app, db)

	members := cohortService.NewCohortMemberService(db, memberColTypes)
	d := &eventDispatcher{
		users:      userController.NewUserEventController(db, members),
		cohorts:    cohortController.NewCohortEventController(db, members),
		attendance: attendanceController.NewAttendanceEventController(db),
		trackers:   trackerController.NewTrackerEventController(db),
		projects:   projectController.NewProjectEventController(db),
	}

	log.Println("[INFO] Setting up event routes...")
	app.Post("/events/:family", d.Dispatch)

	// pesan sync tanpa amplop (jalur lama project-sync)
	app.Post("/events/project-sync/direct", d.projects.SyncDirect)

	log.Println("[INFO] Setting up backfill routes...")
	backfill := backfillController.NewBackfillController(sourceDB, db)
	app.Post("/backfill/:entity", middlewares.BackfillRateLimiter(), backfill.Run)
}

// Dispatch membaca amplop {eventType, data} lalu meneruskan ke handler
// per family. Beberapa tipe event dirutekan lintas family, sama seperti
// consumer lama.
func (d *eventDispatcher) Dispatch(c *fiber.Ctx) error {
	env, err := helpers.ParseEnvelope(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	family := c.Params("family")
	log.Printf("[EVENT] family=%s type=%s", family, env.EventType)

	// routing khusus lintas family
	switch env.EventType {
	case "COURSE_ENROLLMENT_CREATED":
		return d.trackers.CourseEnrollment(c, env.Data)
	case "COURSE_STATUS_UPDATED":
		return d.trackers.CourseStatus(c, env.Data)
	case "CONTENT_TRACKING_CREATED":
		return d.trackers.ContentTracking(c, env.Data)
	case "COURSE_PLANNER_PROJECT_CREATED":
		return d.projects.PlannerCreated(c, env.Data)
	}

	switch family {
	case "users":
		return d.dispatchUser(c, env)
	case "attendance":
		return d.dispatchAttendance(c, env)
	case "tracking":
		return d.dispatchTracking(c, env)
	case "projects":
		return d.dispatchProject(c, env)
	default:
		return helpers.Error(c, fiber.StatusNotFound, "Family event tidak dikenal: "+family)
	}
}

func (d *eventDispatcher) dispatchUser(c *fiber.Ctx, env *helpers.EventEnvelope) error {
	switch env.EventType {
	case "USER_CREATED", "USER_UPDATED":
		return d.users.UpsertUser(c, env.Data)
	case "USER_DELETED":
		return d.users.DeleteUser(c, env.Data)
	case "USER_TENANT_STATUS_UPDATE":
		return d.users.TenantStatusUpdate(c, env.Data)
	case "USER_TENANT_MAPPING":
		return d.users.TenantMapping(c, env.Data)
	case "USER_LOGIN":
		return d.users.LastLogin(c, env.Data)
	case "COHORT_CREATED", "COHORT_UPDATED":
		return d.cohorts.UpsertCohort(c, env.Data)
	case "COHORT_DELETED":
		return d.cohorts.DeleteCohort(c, env.Data)
	case "COHORT_MEMBER_CREATED", "COHORT_MEMBER_UPDATED":
		return d.cohorts.UpsertMember(c, env.Data)
	default:
		return unhandled(c, "user", env.EventType)
	}
}

func (d *eventDispatcher) dispatchAttendance(c *fiber.Ctx, env *helpers.EventEnvelope) error {
	switch env.EventType {
	case "ATTENDANCE_CREATED", "ATTENDANCE_UPDATED":
		return d.attendance.Upsert(c, env.Data)
	case "ATTENDANCE_DELETED":
		return d.attendance.Delete(c, env.Data)
	default:
		return unhandled(c, "attendance", env.EventType)
	}
}

func (d *eventDispatcher) dispatchTracking(c *fiber.Ctx, env *helpers.EventEnvelope) error {
	switch env.EventType {
	case "ASSESSMENT_CREATED", "ASSESSMENT_UPDATED":
		return d.trackers.UpsertAssessment(c, env.Data)
	case "ASSESSMENT_DELETED":
		return d.trackers.DeleteAssessment(c, env.Data)
	default:
		return unhandled(c, "tracking", env.EventType)
	}
}

func (d *eventDispatcher) dispatchProject(c *fiber.Ctx, env *helpers.EventEnvelope) error {
	switch env.EventType {
	case "PROJECT_SYNC_CREATED", "PROJECT_SYNC_UPDATED":
		return d.projects.SyncUpsert(c, env.Data)
	case "PROJECT_TASK_UPDATED":
		return d.projects.TaskUpdate(c, env.Data)
	default:
		return unhandled(c, "project", env.EventType)
	}
}

func unhandled(c *fiber.Ctx, family, eventType string) error {
	log.Printf("[EVENT] Unhandled %s eventType: %s", family, eventType)
	return helpers.Error(c, fiber.StatusUnprocessableEntity, "EventType tidak dikenal untuk family "+family+": "+eventType)
}
