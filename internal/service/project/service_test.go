package project

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/project"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
)

func newProjectTestService(t *testing.T) (project.ProjectService, employee.EmployeeRepository) {
	t.Helper()
	store, err := document.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	employeeRepo := document.NewEmployeeRepository(store)
	svc := NewProjectService(document.NewProjectRepository(store), employeeRepo)
	return svc, employeeRepo
}

func seedProjectEmployee(t *testing.T, repo employee.EmployeeRepository, id, name, username string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		ID: id, Name: name, Username: username, Position: "Engineer",
	})
	require.NoError(t, err)
	return emp
}

func TestCreateProject(t *testing.T) {
	svc, employeeRepo := newProjectTestService(t)
	emp := seedProjectEmployee(t, employeeRepo, "emp-1", "Asha Kumar", "asha")

	created, err := svc.Create(context.Background(), project.CreateProjectRequest{
		EmployeeID:  emp.ID,
		ProjectName: "Billing revamp",
		Description: "Move invoicing off the spreadsheet",
		Status:      string(project.StatusInProgress),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, emp.Name, created.EmployeeName)
	assert.Equal(t, project.StatusInProgress, created.Status)
	assert.Nil(t, created.FileName)
}

func TestCreateProjectUnknownEmployee(t *testing.T) {
	svc, _ := newProjectTestService(t)

	_, err := svc.Create(context.Background(), project.CreateProjectRequest{
		EmployeeID:  "nope",
		ProjectName: "Ghost project",
		Status:      string(project.StatusInProgress),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateProjectValidation(t *testing.T) {
	svc, employeeRepo := newProjectTestService(t)
	emp := seedProjectEmployee(t, employeeRepo, "emp-1", "Asha", "asha")

	_, err := svc.Create(context.Background(), project.CreateProjectRequest{
		EmployeeID:  emp.ID,
		ProjectName: "Bad status",
		Status:      "Finished",
	})
	assert.Error(t, err)
}

func TestUpdateProjectPartial(t *testing.T) {
	svc, employeeRepo := newProjectTestService(t)
	emp := seedProjectEmployee(t, employeeRepo, "emp-1", "Asha", "asha")
	ctx := context.Background()

	created, err := svc.Create(ctx, project.CreateProjectRequest{
		EmployeeID:  emp.ID,
		ProjectName: "Billing revamp",
		Description: "First cut",
		Status:      string(project.StatusInProgress),
	})
	require.NoError(t, err)

	status := string(project.StatusCompleted)
	updated, err := svc.Update(ctx, created.ID, emp.ID, project.UpdateProjectRequest{
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, project.StatusCompleted, updated.Status)
	assert.Equal(t, "Billing revamp", updated.ProjectName)
	assert.Equal(t, "First cut", updated.Description)
}

func TestUpdateProjectNotOwner(t *testing.T) {
	svc, employeeRepo := newProjectTestService(t)
	owner := seedProjectEmployee(t, employeeRepo, "emp-1", "Asha", "asha")
	seedProjectEmployee(t, employeeRepo, "emp-2", "Budi", "budi")
	ctx := context.Background()

	created, err := svc.Create(ctx, project.CreateProjectRequest{
		EmployeeID:  owner.ID,
		ProjectName: "Private work",
		Status:      string(project.StatusInProgress),
	})
	require.NoError(t, err)

	name := "Hijacked"
	_, err = svc.Update(ctx, created.ID, "emp-2", project.UpdateProjectRequest{ProjectName: &name})
	assert.ErrorIs(t, err, project.ErrNotProjectOwner)

	err = svc.Delete(ctx, created.ID, "emp-2")
	assert.ErrorIs(t, err, project.ErrNotProjectOwner)
}

func TestDeleteProject(t *testing.T) {
	svc, employeeRepo := newProjectTestService(t)
	emp := seedProjectEmployee(t, employeeRepo, "emp-1", "Asha", "asha")
	ctx := context.Background()

	created, err := svc.Create(ctx, project.CreateProjectRequest{
		EmployeeID:  emp.ID,
		ProjectName: "Short lived",
		Status:      string(project.StatusOnHold),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, emp.ID))

	projects, err := svc.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)

	err = svc.Delete(ctx, created.ID, emp.ID)
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestListByEmployeeScopedToOwner(t *testing.T) {
	svc, employeeRepo := newProjectTestService(t)
	asha := seedProjectEmployee(t, employeeRepo, "emp-1", "Asha", "asha")
	budi := seedProjectEmployee(t, employeeRepo, "emp-2", "Budi", "budi")
	ctx := context.Background()

	for _, owner := range []string{asha.ID, asha.ID, budi.ID} {
		_, err := svc.Create(ctx, project.CreateProjectRequest{
			EmployeeID:  owner,
			ProjectName: "Work",
			Status:      string(project.StatusInProgress),
		})
		require.NoError(t, err)
	}

	ashaProjects, err := svc.ListByEmployee(ctx, asha.ID)
	require.NoError(t, err)
	assert.Len(t, ashaProjects, 2)

	budiProjects, err := svc.ListByEmployee(ctx, budi.ID)
	require.NoError(t, err)
	assert.Len(t, budiProjects, 1)
}
