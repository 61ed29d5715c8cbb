package apierrors

const (
	MsgInvalidPayload     = "invalidPayload"
	MsgEmptyPatch         = "emptyPatch"
	MsgNameRequired       = "nameRequired"
	MsgInvalidPriority    = "invalidPriority"
	MsgInvalidStatus      = "invalidStatus"
	MsgInvalidTimeSpent   = "invalidTimeSpent"
	MsgInvalidEstimate    = "invalidEstimate"
	MsgUnknownAssignee    = "unknownAssignee"
	MsgInvalidKind        = "invalidKind"
	MsgProjectNotFound    = "projectNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgSubtaskNotFound    = "subtaskNotFound"
	MsgActionItemNotFound = "actionItemNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgResourceNotFound   = "resourceNotFound"
	MsgInternalError      = "internalError"
	MsgFailListSessions   = "failListSessions"
)
