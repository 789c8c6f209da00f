package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "admin not authenticated")
	errMissingToken         = echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed jwt")
	errInvalidToken         = echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired jwt")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")
	errRefreshExpired       = echo.NewHTTPError(http.StatusForbidden, "refresh has expired")
	errHttpForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errNotImplemented       = echo.NewHTTPError(http.StatusNotImplemented, "not configured")

	storeUnavailableMsg = "storage is unavailable, please retry"
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		// StoreError is a causer itself, errors.Cause would look past it
		if core.IsStore(err) {
			code = http.StatusServiceUnavailable
			message = storeUnavailableMsg
			logger.Error(storeUnavailableMsg, err, contextUser(ctx))
		} else {
			switch origErr := errors.Cause(err).(type) {
			case *echo.HTTPError:
				if origErr.Internal != nil {
					if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
						origErr = herr
					}
				}
				code = origErr.Code
				message = origErr.Message
			case validator.ValidationErrors:
				fldErrs := make(map[string]string, len(origErr))
				for _, vErr := range origErr {
					fldErrs[vErr.Field()] = vErr.Translate(translator)
				}
				code = http.StatusBadRequest
				message = fldErrs
			case *core.ValidationError:
				if origErr.Fields != nil {
					fldErrs := make(map[string]string, len(origErr.Fields))
					for _, fErr := range origErr.Fields {
						fldErrs[fErr.Field] = fErr.Error
					}
					message = fldErrs
				} else {
					message = origErr.Error()
				}
				code = http.StatusBadRequest
			case *core.NotFoundError:
				code = http.StatusNotFound
				message = origErr.Error()
			default:
				code, message = sentinelError(origErr)
				if code == 0 { // any other error is a server error
					code = http.StatusInternalServerError
					msg := http.StatusText(http.StatusInternalServerError)
					message = msg

					logger.Error(msg, errors.Wrap(err, msg), contextUser(ctx))

					// shutting down...
					if core.IsShutdown(err) {
						signalShutdown()
					}
				}
			}
		}

		if ctx.Echo().Debug && code >= http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func sentinelError(err error) (int, interface{}) {
	switch err {
	case admin.ErrForbidden:
		return errHttpForbidden.Code, err.Error()
	case admin.ErrInvalidCredentials:
		return errAuthenticationFailed.Code, errAuthenticationFailed.Message
	case admin.ErrIDTokenNotConfigured:
		return errNotImplemented.Code, err.Error()
	}
	return 0, nil
}
