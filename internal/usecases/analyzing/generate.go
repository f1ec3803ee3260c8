package analyzing

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
