package repository

//go:generate mockgen -source=account.go -destination=mocks/mock_account.go -package=mocks
//go:generate mockgen -source=daily_record.go -destination=mocks/mock_daily_record.go -package=mocks
//go:generate mockgen -source=advisory_report.go -destination=mocks/mock_advisory_report.go -package=mocks
