package event_mocks

//go:generate mockgen -source=../events.go -destination=event_mocks.go -package=event_mocks
