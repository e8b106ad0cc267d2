package public

import (
	"errors"
	"net/http"
	"strings"

	"github.com/veltrachem-web/internal/http/handlers/shared"
	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

const contactSuccessMessage = "Thank you for contacting us. We will get back to you soon."

// ContactPage renders the contact form.
func (h *Handler) ContactPage(c *gin.Context) {
	data := h.basePageData("Contact Us")
	data["productChoices"] = productInterestChoices()
	c.HTML(http.StatusOK, "contact.tmpl", data)
}

// Contact handles the browser contact form: form-encoded or JSON
// bodies, HTML re-render for browsers, JSON for script clients. The
// validation itself is identical to the AJAX endpoint.
func (h *Handler) Contact(c *gin.Context) {
	input, ok := bindContactInput(c)
	if !ok {
		return
	}

	_, err := h.ContactService.Submit(input)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			if wantsJSON(c) {
				response.FormValidationError(c, "Please correct the errors below.", fieldErrs)
				return
			}
			data := h.basePageData("Contact Us")
			data["productChoices"] = productInterestChoices()
			data["errors"] = map[string]string(fieldErrs)
			data["form"] = input
			data["flashError"] = "Please correct the errors below."
			c.HTML(http.StatusOK, "contact.tmpl", data)
			return
		}
		shared.RequestLog(c).Errorw("contact_submit_failed", "error", err)
		if wantsJSON(c) {
			response.FormError(c, http.StatusInternalServerError, err.Error())
			return
		}
		data := h.basePageData("Contact Us")
		data["productChoices"] = productInterestChoices()
		data["form"] = input
		data["flashError"] = "Something went wrong. Please try again."
		c.HTML(http.StatusInternalServerError, "contact.tmpl", data)
		return
	}

	if wantsJSON(c) {
		response.FormSuccess(c, contactSuccessMessage)
		return
	}
	data := h.basePageData("Contact Us")
	data["productChoices"] = productInterestChoices()
	data["flashSuccess"] = contactSuccessMessage
	c.HTML(http.StatusOK, "contact.tmpl", data)
}

// ContactAjax handles the JSON-only contact endpoint. Same rules,
// always a JSON body, HTTP 400 on validation failure.
func (h *Handler) ContactAjax(c *gin.Context) {
	input, ok := bindContactInput(c)
	if !ok {
		return
	}

	_, err := h.ContactService.Submit(input)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			response.FormValidationError(c, "Please correct the errors below.", fieldErrs)
			return
		}
		shared.RequestLog(c).Errorw("contact_submit_failed", "error", err)
		response.FormError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.FormSuccess(c, contactSuccessMessage)
}

func bindContactInput(c *gin.Context) (service.ContactInput, bool) {
	var input service.ContactInput
	if strings.Contains(c.ContentType(), "json") {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.FormError(c, http.StatusBadRequest, "Invalid request body")
			return input, false
		}
		return input, true
	}
	if err := c.ShouldBind(&input); err != nil {
		response.FormError(c, http.StatusBadRequest, "Invalid request body")
		return input, false
	}
	return input, true
}

func wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.ContentType(), "json") {
		return true
	}
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
