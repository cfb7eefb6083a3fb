// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package i18n

// Key identifies a user facing message
type Key string

const (
	NoAuthorizationHeader Key = "no_authorization_header"
	InvalidToken          Key = "invalid_token"
	SuperAdminOnly        Key = "super_admin_only"
	Forbidden             Key = "forbidden"
	InvalidRequest        Key = "invalid_request"

	CompanyIDRequired     Key = "company_id_required"
	OnlyCancelledAccounts Key = "only_cancelled_accounts"
	CompanyNotFound       Key = "company_not_found"
	DeleteCompanyFailed   Key = "delete_company_failed"
	DeleteAccountFailed   Key = "delete_account_failed"
	BillingCancelFailed   Key = "billing_cancel_failed"
	CompanyDeleted        Key = "company_deleted"
	AccountDeleted        Key = "account_deleted"
	PortalFailed          Key = "portal_failed"
	SubscriptionNotFound  Key = "subscription_not_found"

	BarberIDRequired     Key = "barber_id_required"
	BarberNotFound       Key = "barber_not_found"
	BarberWithoutEmail   Key = "barber_without_email"
	NoActiveTermCompany  Key = "no_active_term_company"
	TermNotFound         Key = "term_not_found"
	EmailSendFailed      Key = "email_send_failed"
	EmailSent            Key = "email_sent"
	InvalidTermLink      Key = "invalid_term_link"
	NoActiveTerm         Key = "no_active_term"
	TermAlreadyAccepted  Key = "term_already_accepted"
	CommissionChanged    Key = "commission_changed"
	TermPending          Key = "term_acceptance_pending"
	ScrollRequired       Key = "scroll_required"
	CheckboxRequired     Key = "checkbox_required"
	TermAccepted         Key = "term_accepted"
	InternalError        Key = "internal_error"
	TermStatusFailed     Key = "term_status_failed"
	BarberUpdateFailed   Key = "barber_update_failed"
	BarberActivationDone Key = "barber_activation_done"
)

var portuguese = map[Key]string{
	NoAuthorizationHeader: "No authorization header",
	InvalidToken:          "Invalid token",
	SuperAdminOnly:        "Unauthorized - Super admin only",
	Forbidden:             "Acesso negado",
	InvalidRequest:        "Requisição inválida",

	CompanyIDRequired:     "Company ID is required",
	OnlyCancelledAccounts: "Only cancelled accounts can be deleted",
	CompanyNotFound:       "Company not found",
	DeleteCompanyFailed:   "Erro ao excluir a empresa. Tente novamente.",
	DeleteAccountFailed:   "Erro ao excluir a conta. Tente novamente.",
	BillingCancelFailed:   "Não foi possível cancelar a assinatura no Stripe. Por favor, cancele a assinatura antes de excluir a conta.",
	CompanyDeleted:        "Company and user deleted successfully",
	AccountDeleted:        "Account deleted successfully",
	PortalFailed:          "Erro ao acessar o portal de assinatura. Tente novamente.",
	SubscriptionNotFound:  "Assinatura não encontrada",

	BarberIDRequired:     "barber_id is required",
	BarberNotFound:       "Profissional não encontrado",
	BarberWithoutEmail:   "Profissional não possui email cadastrado",
	NoActiveTermCompany:  "Nenhum termo ativo encontrado para esta empresa",
	TermNotFound:         "Termo não encontrado",
	EmailSendFailed:      "Erro ao enviar email",
	EmailSent:            "Email enviado com sucesso",
	InvalidTermLink:      "Link inválido, expirado ou termo já aceito.",
	NoActiveTerm:         "Nenhum termo de parceria ativo encontrado.",
	TermAlreadyAccepted:  "Termo já foi aceito ou link inválido.",
	CommissionChanged:    "A comissão foi alterada. Recarregue o termo antes de aceitar.",
	TermPending:          "Aceite do termo pendente",
	ScrollRequired:       "Role o termo até o final antes de aceitar.",
	CheckboxRequired:     "Confirme que leu e concorda com o termo.",
	TermAccepted:         "Termo aceito com sucesso!",
	InternalError:        "Erro interno. Tente novamente.",
	TermStatusFailed:     "Erro ao consultar o termo do profissional.",
	BarberUpdateFailed:   "Erro ao atualizar o profissional.",
	BarberActivationDone: "Profissional atualizado com sucesso",
}

var english = map[Key]string{
	NoAuthorizationHeader: "No authorization header",
	InvalidToken:          "Invalid token",
	SuperAdminOnly:        "Unauthorized - Super admin only",
	Forbidden:             "Access denied",
	InvalidRequest:        "Invalid request",

	CompanyIDRequired:     "Company ID is required",
	OnlyCancelledAccounts: "Only cancelled accounts can be deleted",
	CompanyNotFound:       "Company not found",
	DeleteCompanyFailed:   "Failed to delete the company. Please try again.",
	DeleteAccountFailed:   "Failed to delete the account. Please try again.",
	BillingCancelFailed:   "Could not cancel the Stripe subscription. Please cancel the subscription before deleting the account.",
	CompanyDeleted:        "Company and user deleted successfully",
	AccountDeleted:        "Account deleted successfully",
	PortalFailed:          "Failed to open the subscription portal. Please try again.",
	SubscriptionNotFound:  "Subscription not found",

	BarberIDRequired:     "barber_id is required",
	BarberNotFound:       "Professional not found",
	BarberWithoutEmail:   "Professional has no email address",
	NoActiveTermCompany:  "No active term found for this company",
	TermNotFound:         "Term not found",
	EmailSendFailed:      "Failed to send email",
	EmailSent:            "Email sent successfully",
	InvalidTermLink:      "Invalid or expired link, or term already accepted.",
	NoActiveTerm:         "No active partnership term found.",
	TermAlreadyAccepted:  "Term already accepted or invalid link.",
	CommissionChanged:    "The commission has changed. Reload the term before accepting.",
	TermPending:          "Term acceptance pending",
	ScrollRequired:       "Scroll to the end of the term before accepting.",
	CheckboxRequired:     "Confirm that you read and agree with the term.",
	TermAccepted:         "Term accepted successfully!",
	InternalError:        "Internal error. Please try again.",
	TermStatusFailed:     "Failed to read the professional's term.",
	BarberUpdateFailed:   "Failed to update the professional.",
	BarberActivationDone: "Professional updated successfully",
}
