package store

// Key namespace conventions partitioning entity types within the flat
// key space.

func UserKey(email string) string { return "user:" + email }

func UserIDKey(userID string) string { return "user:id:" + userID }

func UserApplicationsKey(userID string) string { return "user:" + userID + ":applications" }

func ApplicationKey(appID string) string { return "application:" + appID }

func ResumeKey(userID string) string { return "resume:" + userID }

func ResumeMetaKey(userID string) string { return "resume:meta:" + userID }

func ConversationKey(userID string) string { return "conversation:" + userID }

func MatchKey(jobID, resumeDigest string) string { return "match:" + jobID + ":" + resumeDigest }
