package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/errs"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	validationErrorResult = ginx.Result{
		Code: errs.ValidationError.Code,
		Msg:  errs.ValidationError.Msg,
	}
	insufficientCreditsResult = ginx.Result{
		Code: errs.InsufficientCredits.Code,
		Msg:  errs.InsufficientCredits.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.NotFound.Code,
		Msg:  errs.NotFound.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	invalidStateResult = ginx.Result{
		Code: errs.InvalidState.Code,
		Msg:  errs.InvalidState.Msg,
	}
	expiredResult = ginx.Result{
		Code: errs.Expired.Code,
		Msg:  errs.Expired.Msg,
	}
)

func errorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrInvalidProposal),
		errors.Is(err, service.ErrDuplicateProposal):
		return validationErrorResult
	case errors.Is(err, service.ErrCreditNotEnough):
		return insufficientCreditsResult
	case errors.Is(err, service.ErrProposalNotFound):
		return notFoundResult
	case errors.Is(err, service.ErrPermissionDenied):
		return forbiddenResult
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStateResult
	case errors.Is(err, service.ErrProposalExpired):
		return expiredResult
	default:
		return systemErrorResult
	}
}
