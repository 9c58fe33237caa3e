package models

import "slices"

// статусы заявки, справочник заполняется при старте
const (
	StatusNew          uint = 1
	StatusInProcessing uint = 2
	StatusInProgress   uint = 3
	StatusAdjustment   uint = 4
	StatusCompleted    uint = 5
	StatusCancelled    uint = 6
)

// статусы, доступные технику
var TechnicianStatuses = []uint{StatusInProgress, StatusAdjustment}

func IsTechnicianStatus(statusID uint) bool {
	return slices.Contains(TechnicianStatuses, statusID)
}

type RequestPriority string

const (
	PriorityLow    RequestPriority = "Low"
	PriorityMedium RequestPriority = "Medium"
	PriorityHigh   RequestPriority = "High"
	PriorityUrgent RequestPriority = "Urgent"
)

var priorityHumanName = map[RequestPriority]string{
	PriorityLow:    "Низкий",
	PriorityMedium: "Средний",
	PriorityHigh:   "Высокий",
	PriorityUrgent: "Срочный",
}

func (p RequestPriority) ToHuman() string {
	if human, exist := priorityHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p RequestPriority) IsValid() bool {
	_, ok := priorityHumanName[p]
	return ok
}

type NotificationType string

const (
	NotificationStatusChange NotificationType = "StatusChange"
	NotificationAssignment   NotificationType = "Assignment"
	NotificationFileAdded    NotificationType = "FileAdded"
	NotificationComment      NotificationType = "Comment"
)

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "Pending"
	DeliverySent    DeliveryStatus = "Sent"
	DeliveryFailed  DeliveryStatus = "Failed"
)

// HistoryField что изменилось в заявке
type HistoryField string

const (
	HistoryFieldStatus     HistoryField = "Status"
	HistoryFieldDetails    HistoryField = "Details"
	HistoryFieldComment    HistoryField = "Comment"
	HistoryFieldFile       HistoryField = "File"
	HistoryFieldAssignment HistoryField = "Assignment"
)

// IsClientVisible назначения и файлы клиенту не показываются
func (f HistoryField) IsClientVisible() bool {
	return f != HistoryFieldAssignment && f != HistoryFieldFile
}

type ReportType string

const (
	ReportTypePdf  ReportType = "pdf"
	ReportTypeXlsx ReportType = "xlsx"
)
