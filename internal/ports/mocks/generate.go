//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../form_validator.go   -destination=./mock_form_validator.go   -package=mocks
//go:generate mockgen -source=../mailer.go           -destination=./mock_mailer.go           -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../order_intake.go     -destination=./mock_order_intake.go     -package=mocks

package mocks
