package handler

import (
	"net/http"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/api/handler/router"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/authenticating"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodGet,
			Handler: ListUsers(service),
		},
		{
			Path:    "/v1/users/change-password",
			Method:  http.MethodPost,
			Handler: ChangePassword(service),
		},
	}
}

func Offers(service offering.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offers",
			Method:  http.MethodPost,
			Handler: CreateOffer(service),
		},
		{
			Path:    "/v1/offers",
			Method:  http.MethodGet,
			Handler: ListOffers(service),
		},
		{
			Path:    "/v1/offers/:id",
			Method:  http.MethodGet,
			Handler: GetOffer(service),
		},
		{
			Path:    "/v1/offers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteOffer(service),
		},
		{
			Path:    "/v1/offers/:id/status",
			Method:  http.MethodPut,
			Handler: ChangeOfferStatus(service),
		},
		{
			Path:    "/v1/offers/:id/financial-config",
			Method:  http.MethodPut,
			Handler: UpdateFinancialConfig(service),
		},
		{
			Path:    "/v1/offers/:id/summary",
			Method:  http.MethodGet,
			Handler: GetOfferSummary(service),
		},
	}
}

func Funnel(service offering.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offers/:id/funnel/items",
			Method:  http.MethodPost,
			Handler: AddFunnelItem(service),
		},
		{
			Path:    "/v1/offers/:id/funnel/items/:item_id/toggle",
			Method:  http.MethodPut,
			Handler: ToggleFunnelItem(service),
		},
		{
			Path:    "/v1/offers/:id/funnel/vitals",
			Method:  http.MethodGet,
			Handler: GetFunnelVitals(service),
		},
		{
			Path:    "/v1/offers/:id/funnel/rollup",
			Method:  http.MethodGet,
			Handler: GetFunnelRollup(service),
		},
	}
}

func Testing(service offering.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offers/:id/testing/ads",
			Method:  http.MethodPost,
			Handler: AddTestingAd(service),
		},
		{
			Path:    "/v1/offers/:id/testing/ads/:ad_name/toggle",
			Method:  http.MethodPut,
			Handler: ToggleTestingAd(service),
		},
		{
			Path:    "/v1/offers/:id/testing/records",
			Method:  http.MethodPost,
			Handler: AddTestingRecord(service),
		},
		{
			Path:    "/v1/offers/:id/testing/records/:index",
			Method:  http.MethodPut,
			Handler: UpdateTestingRecord(service),
		},
		{
			Path:    "/v1/offers/:id/testing/records/:index",
			Method:  http.MethodDelete,
			Handler: DeleteTestingRecord(service),
		},
		{
			Path:    "/v1/offers/:id/testing/suggestions",
			Method:  http.MethodGet,
			Handler: GetSuggestions(service),
		},
		{
			Path:    "/v1/offers/:id/testing/rollup",
			Method:  http.MethodGet,
			Handler: GetTestingRollup(service),
		},
		{
			Path:    "/v1/offers/:id/testing/consistency",
			Method:  http.MethodGet,
			Handler: GetConsistency(service),
		},
	}
}

func Scale(service offering.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offers/:id/scale/campaigns",
			Method:  http.MethodPost,
			Handler: CreateScaleCampaign(service),
		},
		{
			Path:    "/v1/offers/:id/scale/campaigns/:campaign_id/toggle",
			Method:  http.MethodPut,
			Handler: ToggleScaleCampaign(service),
		},
		{
			Path:    "/v1/offers/:id/scale/campaigns/:campaign_id/components",
			Method:  http.MethodPost,
			Handler: AddScaleComponent(service),
		},
		{
			Path:    "/v1/offers/:id/scale/campaigns/:campaign_id/components/:component_name/toggle",
			Method:  http.MethodPut,
			Handler: ToggleScaleComponent(service),
		},
		{
			Path:    "/v1/offers/:id/scale/campaigns/:campaign_id/records",
			Method:  http.MethodPost,
			Handler: AddScaleRecord(service),
		},
		{
			Path:    "/v1/offers/:id/scale/campaigns/:campaign_id/records/:index",
			Method:  http.MethodPut,
			Handler: UpdateScaleRecord(service),
		},
		{
			Path:    "/v1/offers/:id/scale/campaigns/:campaign_id/records/:index",
			Method:  http.MethodDelete,
			Handler: DeleteScaleRecord(service),
		},
		{
			Path:    "/v1/offers/:id/scale/campaigns/:campaign_id/rollup",
			Method:  http.MethodGet,
			Handler: GetCampaignRollup(service),
		},
	}
}

func Checklists(service offering.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offers/:id/checklist",
			Method:  http.MethodPost,
			Handler: AssignChecklist(service),
		},
		{
			Path:    "/v1/offers/:id/checklist",
			Method:  http.MethodPut,
			Handler: EditChecklist(service),
		},
		{
			Path:    "/v1/offers/:id/checklist/tasks/:task_index/toggle",
			Method:  http.MethodPut,
			Handler: ToggleChecklistTask(service),
		},
		{
			Path:    "/v1/offers/:id/checklist/progress",
			Method:  http.MethodGet,
			Handler: GetChecklistProgress(service),
		},
		{
			Path:    "/v1/templates",
			Method:  http.MethodPost,
			Handler: CreateTemplate(service),
		},
		{
			Path:    "/v1/templates",
			Method:  http.MethodGet,
			Handler: ListTemplates(service),
		},
		{
			Path:    "/v1/templates/:template_id",
			Method:  http.MethodPut,
			Handler: UpdateTemplate(service),
		},
		{
			Path:    "/v1/templates/:template_id",
			Method:  http.MethodDelete,
			Handler: DeleteTemplate(service),
		},
	}
}

func Vault(service offering.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/vault",
			Method:  http.MethodPost,
			Handler: CreateVaultEntry(service),
		},
		{
			Path:    "/v1/vault",
			Method:  http.MethodGet,
			Handler: ListVault(service),
		},
		{
			Path:    "/v1/vault/:entry_id",
			Method:  http.MethodPut,
			Handler: UpdateVaultEntry(service),
		},
		{
			Path:    "/v1/vault/:entry_id/status",
			Method:  http.MethodPut,
			Handler: ChangeVaultStatus(service),
		},
		{
			Path:    "/v1/vault/:entry_id",
			Method:  http.MethodDelete,
			Handler: DeleteVaultEntry(service),
		},
	}
}

func Dashboard(service offering.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
