package models

import (
	"github.com/akoncore/BookingSystem/internal/domain"
)

// Request модели

// UpsertDayRequest запрос на установку расписания мастера на один день недели
type UpsertDayRequest struct {
	Weekday   int    `json:"weekday"` // 0 = понедельник .. 6 = воскресенье
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsWorking bool   `json:"isWorking"`
}

// Response модели

// ScheduleDayResponse расписание мастера на один день недели
type ScheduleDayResponse struct {
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekdayName"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	IsWorking   bool   `json:"isWorking"`
}

// ScheduleResponse недельное расписание мастера
type ScheduleResponse struct {
	MasterID int64                 `json:"masterId"`
	Days     []ScheduleDayResponse `json:"days"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.MasterSchedule) ScheduleDayResponse {
	resp := ScheduleDayResponse{
		Weekday:     s.Weekday,
		WeekdayName: domain.WeekdayNames[s.Weekday],
		IsWorking:   s.IsWorking,
	}
	if s.IsWorking {
		resp.StartTime = s.StartTime.String()
		resp.EndTime = s.EndTime.String()
	}
	return resp
}

// FromDomainScheduleList конвертирует список моделей в DTO
func FromDomainScheduleList(masterID int64, list []*domain.MasterSchedule) *ScheduleResponse {
	days := make([]ScheduleDayResponse, 0, len(list))
	for _, s := range list {
		days = append(days, FromDomainSchedule(s))
	}
	return &ScheduleResponse{MasterID: masterID, Days: days}
}
