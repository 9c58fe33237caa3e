package models

type RbacFunc func(userID string, roles []UserRole, path string) bool

type Module string

const (
	UsersModule         Module = "USERS"
	RequestModule       Module = "REQUEST"
	EquipmentTypeModule Module = "EQUIPMENT_TYPE"
	AuditLogModule      Module = "AUDIT_LOG"
	NotificationModule  Module = "NOTIFICATION"
	ReportModule        Module = "REPORT"
	StatisticModule     Module = "STATISTIC"
	DictModule          Module = "DICT"
	ProfileModule       Module = "PROFILE"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
	TeamPermission   Permission = "TEAM"
	FilesPermission  Permission = "FILES"
	NotesPermission  Permission = "NOTES"
)
