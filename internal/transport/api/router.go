package api

import (
	"time"

	"github.com/fsdevblog/groph-invest/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup    = "/api"
	RegisterRoute = "/user/register"
	LoginRoute    = "/user/login"

	RequestsRoute = "/investment-requests"
	RequestRoute  = "/investment-requests/:id"

	SettingsRoute    = "/settings"
	ContractsRoute   = "/user/contracts"
	NewslettersRoute = "/newsletters"
	TCFRoute         = "/tcf"

	AdminNewslettersRoute = "/admin/newsletters"
	AdminReferralsRoute   = "/admin/referrals"
	AdminReferralRoute    = "/admin/referrals/:id"
	AdminTCFLeadsRoute    = "/admin/tcf-leads"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	RequestService  RequestServicer
	SettingsService SettingsServicer
	ContractService ContractServicer
	PortalService   PortalServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	requestsHandler := NewRequestsHandler(args.RequestService)
	settingsHandler := NewSettingsHandler(args.SettingsService)
	contractsHandler := NewContractsHandler(args.ContractService)
	portalHandler := NewPortalHandler(args.PortalService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// публичные роуты: чтение настроек допускает анонимный доступ, лид-форма всегда анонимна.
	api.GET(SettingsRoute, settingsHandler.Show)
	api.GET(NewslettersRoute, portalHandler.Newsletters)
	api.POST(TCFRoute, portalHandler.SubmitTCFLead)

	authed := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	authed.POST(RequestsRoute, requestsHandler.Create)
	authed.GET(ContractsRoute, contractsHandler.Index)

	admin := authed.Group("", middlewares.AdminRequired())
	// решения по заявкам, курс и справочники портала - только администраторам.
	admin.GET(RequestsRoute, requestsHandler.Index)
	admin.PATCH(RequestRoute, requestsHandler.Resolve)
	admin.PUT(SettingsRoute, settingsHandler.Update)
	admin.POST(AdminNewslettersRoute, portalHandler.CreateNewsletter)
	admin.GET(AdminReferralsRoute, portalHandler.Referrals)
	admin.POST(AdminReferralsRoute, portalHandler.CreateReferral)
	admin.PATCH(AdminReferralRoute, portalHandler.UpdateReferral)
	admin.GET(AdminTCFLeadsRoute, portalHandler.TCFLeads)

	return r
}
