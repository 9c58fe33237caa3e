package rbac

import (
	"komreq-backend/models"
)

var (
	AllRoles              = models.AllUserRoles
	StaffRoleSet          = []models.UserRole{models.AdminRole, models.ManagerRole, models.TechnicianRole}
	AdminManagerRoleSet   = []models.UserRole{models.AdminRole, models.ManagerRole}
	RequestCreatorRoleSet = []models.UserRole{models.AdminRole, models.ManagerRole, models.ClientRole}
	AdminRoleSet          = []models.UserRole{models.AdminRole}
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.profile()
	i.addRequestRbac()
	i.equipmentType()
	i.auditLog()
	i.notification()
	i.report()
	i.dicts()
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, AdminRoleSet, "/api/v1/auth/users [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/auth/create-user [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/auth/delete-user/{id} [delete]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/auth/change-role [post]", nil)
}

func (i *impl) profile() {
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/me [get]", nil)
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/ws [get]", nil)
}

// видимость конкретной заявки проверяется в обработчике
func (i *impl) addRequestRbac() {
	// VIEW
	i.RegisterRule(models.RequestModule, models.ViewPermission, AllRoles, "/api/v1/request [get]", nil)
	i.RegisterRule(models.RequestModule, models.ViewPermission, AllRoles, "/api/v1/request/{id} [get]", nil)
	i.RegisterRule(models.RequestModule, models.ViewPermission, AllRoles, "/api/v1/request/{id}/history [get]", nil)
	i.RegisterRule(models.RequestModule, models.ViewPermission, AllRoles, "/api/v1/request/{id}/files [get]", nil)
	i.RegisterRule(models.RequestModule, models.ViewPermission, AllRoles, "/api/v1/request/{id}/files/{fileId} [get]", nil)
	// CREATE/EDIT
	i.RegisterRule(models.RequestModule, models.CreatePermission, RequestCreatorRoleSet, "/api/v1/request/create [post]", nil)
	i.RegisterRule(models.RequestModule, models.EditPermission, AdminManagerRoleSet, "/api/v1/request/{id} [put]", nil)
	// FLOW
	i.RegisterRule(models.RequestModule, models.FlowPermission, StaffRoleSet, "/api/v1/request/{id}/status [put]", nil)
	// TEAM
	i.RegisterRule(models.RequestModule, models.TeamPermission, AdminManagerRoleSet, "/api/v1/request/{id}/assign [post]", nil)
	// FILES/NOTES
	i.RegisterRule(models.RequestModule, models.FilesPermission, StaffRoleSet, "/api/v1/request/{id}/files [post]", nil)
	i.RegisterRule(models.RequestModule, models.NotesPermission, AllRoles, "/api/v1/request/{id}/add-comment [post]", nil)
	// MANAGE
	i.RegisterRule(models.RequestModule, models.ManagePermission, AdminRoleSet, "/api/v1/request/{id} [delete]", nil)
}

func (i *impl) equipmentType() {
	// VIEW
	i.RegisterRule(models.EquipmentTypeModule, models.ViewPermission, AllRoles, "/api/v1/equipmenttype [get]", nil)
	i.RegisterRule(models.EquipmentTypeModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/equipmenttype/all [get]", nil)
	i.RegisterRule(models.EquipmentTypeModule, models.ViewPermission, AdminRoleSet, "/api/v1/equipmenttype/{id} [get]", nil)
	// MANAGE
	i.RegisterRule(models.EquipmentTypeModule, models.ManagePermission, AdminRoleSet, "/api/v1/equipmenttype [post]", nil)
	i.RegisterRule(models.EquipmentTypeModule, models.ManagePermission, AdminRoleSet, "/api/v1/equipmenttype/{id} [put]", nil)
	i.RegisterRule(models.EquipmentTypeModule, models.ManagePermission, AdminRoleSet, "/api/v1/equipmenttype/{id} [delete]", nil)
}

func (i *impl) auditLog() {
	i.RegisterRule(models.AuditLogModule, models.ViewPermission, AdminRoleSet, "/api/v1/auditlog [get]", nil)
	i.RegisterRule(models.AuditLogModule, models.ViewPermission, AdminRoleSet, "/api/v1/auditlog/{id} [get]", nil)
}

// уведомления только свои, фильтр по пользователю в обработчике
func (i *impl) notification() {
	i.RegisterRule(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notification [get]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notification/{id}/mark-read [post]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notification/mark-all-read [post]", nil)
}

func (i *impl) report() {
	i.RegisterRule(models.ReportModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/report/requests-pdf [get]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/report/requests-excel [get]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/report/history [get]", nil)
	i.RegisterRule(models.StatisticModule, models.ViewPermission, AdminManagerRoleSet, "/api/v1/statistic/status [get]", nil)
}

func (i *impl) dicts() {
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/requeststatus [get]", nil)
}
