package adcom1

// AdCOM 1.0 List: Audit Status Codes
//
// Codes used in Audit objects to reflect status or workflow state.
type AuditStatus int8

const (
	AuditStatusPendingAudit       AuditStatus = 1 // Pending Audit
	AuditStatusPreApproved        AuditStatus = 2 // Pre-Approved
	AuditStatusApproved           AuditStatus = 3 // Approved
	AuditStatusDenied             AuditStatus = 4 // Denied
	AuditStatusChangedResubmitted AuditStatus = 5 // Changed; Resubmission Requested
)
