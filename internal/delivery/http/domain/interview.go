package domain

var (
	AUTH_REGISTER_SUCCESS = "Registration successful"
	AUTH_REGISTER_FAILED  = "Registration failed"
	AUTH_LOGIN_SUCCESS    = "Login successful"
	AUTH_LOGIN_FAILED     = "Login failed"
	AUTH_ME_SUCCESS       = "Successfully fetched current user"
	AUTH_ME_FAILED        = "Failed to fetch current user"
	AUTH_UNAUTHORIZED     = "Unauthorized"

	INTERVIEW_START_SUCCESS         = "Interview started"
	INTERVIEW_START_FAILED          = "Failed to start interview"
	INTERVIEW_LIST_SUCCESS          = "Successfully fetched interviews"
	INTERVIEW_LIST_FAILED           = "Failed to fetch interviews"
	INTERVIEW_GET_SUCCESS           = "Successfully fetched interview"
	INTERVIEW_GET_FAILED            = "Failed to fetch interview"
	INTERVIEW_SUBMIT_ANSWER_SUCCESS = "Answer submitted"
	INTERVIEW_SUBMIT_ANSWER_FAILED  = "Failed to submit answer"
	INTERVIEW_COMPLETE_SUCCESS      = "Interview completed"
	INTERVIEW_COMPLETE_FAILED       = "Failed to complete interview"
	INTERVIEW_GET_REPORT_SUCCESS    = "Successfully fetched report"
	INTERVIEW_GET_REPORT_FAILED     = "Failed to fetch report"
	QUESTION_BANK_SUCCESS           = "Successfully fetched question bank"
	QUESTION_BANK_FAILED            = "Failed to fetch question bank"

	PROCTOR_ACTIVATE_SUCCESS   = "Proctoring activated"
	PROCTOR_ACTIVATE_FAILED    = "Failed to activate proctoring"
	PROCTOR_DEACTIVATE_SUCCESS = "Proctoring deactivated"
	PROCTOR_DEACTIVATE_FAILED  = "Failed to deactivate proctoring"
	PROCTOR_STATE_SUCCESS      = "Successfully fetched proctoring state"
	PROCTOR_STATE_FAILED       = "Failed to fetch proctoring state"
	PROCTOR_VIOLATION_SUCCESS  = "Violation processed"
	PROCTOR_VIOLATION_FAILED   = "Failed to process violation"
	PROCTOR_TERMINATED         = "Interview terminated after repeated proctoring violations"
	PROCTOR_EVENTS_SUCCESS     = "Successfully fetched proctoring events"
	PROCTOR_EVENTS_FAILED      = "Failed to fetch proctoring events"
)
