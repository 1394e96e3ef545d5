package domain

// DocumentStatus is the shared status enum for approval-flow documents
// (voucher requests, asset transfers, asset disposals, purchase returns).
type DocumentStatus string

const (
	StatusDraft           DocumentStatus = "DRAFT"
	StatusPendingApproval DocumentStatus = "PENDING_APPROVAL"
	StatusApproved        DocumentStatus = "APPROVED"
	StatusRejected        DocumentStatus = "REJECTED"
	StatusCompleted       DocumentStatus = "COMPLETED"
	StatusCancelled       DocumentStatus = "CANCELLED"
)

// WorkflowAction names a transition trigger on a workflow document.
type WorkflowAction string

const (
	ActionSubmit   WorkflowAction = "SUBMIT"
	ActionApprove  WorkflowAction = "APPROVE"
	ActionReject   WorkflowAction = "REJECT"
	ActionComplete WorkflowAction = "COMPLETE"
	ActionCancel   WorkflowAction = "CANCEL"
)

// workflowEdges is the fixed transition graph:
//
//	draft            --submit-->   pending_approval
//	pending_approval --approve-->  approved
//	pending_approval --reject-->   rejected
//	approved         --complete--> completed
//	draft|approved   --cancel-->   cancelled
//
// Terminal states (completed, rejected, cancelled) have no outgoing edges.
var workflowEdges = map[DocumentStatus]map[WorkflowAction]DocumentStatus{
	StatusDraft: {
		ActionSubmit: StatusPendingApproval,
		ActionCancel: StatusCancelled,
	},
	StatusPendingApproval: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
	},
	StatusApproved: {
		ActionComplete: StatusCompleted,
		ActionCancel:   StatusCancelled,
	},
}

// NextStatus returns the status reached by applying action to the current
// status, or false when the transition is not in the graph.
func NextStatus(current DocumentStatus, action WorkflowAction) (DocumentStatus, bool) {
	next, ok := workflowEdges[current][action]
	return next, ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func IsTerminal(status DocumentStatus) bool {
	return len(workflowEdges[status]) == 0
}
