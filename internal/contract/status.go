package contract

import "github.com/alexanderramin/steward/internal/app"

type AuditStatus = app.AuditStatus

type RegistryStatus = app.RegistryStatus

type StatusResponse = app.StatusResponse
