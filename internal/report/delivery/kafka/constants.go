package kafka

// DefaultTopicReportEvents carries report.created, report.updated and report.deleted events.
const DefaultTopicReportEvents = "reports.events"
