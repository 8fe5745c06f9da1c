// Command shopfront is a CLI for the testing-playground storefront API. It
// wires the configuration, the API client, and the persisted session and
// cart stores, and exposes one subcommand per storefront operation.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/romsper/testing-playground-client/internal/api"
	"github.com/romsper/testing-playground-client/internal/auth"
	"github.com/romsper/testing-playground-client/internal/config"
	"github.com/romsper/testing-playground-client/internal/logger"
	"github.com/romsper/testing-playground-client/internal/model"
	"github.com/romsper/testing-playground-client/internal/payload"
	"github.com/romsper/testing-playground-client/internal/router"
	"github.com/romsper/testing-playground-client/internal/storage"
	"github.com/romsper/testing-playground-client/internal/store"
)

const usage = `usage: shopfront <command> [flags]

commands:
  register        create an account
  login           authenticate and persist the session
  refresh         exchange the refresh token for new tokens
  logout          clear the persisted session
  whoami          show the current account
  products        list products
  product         show one product by id
  product-create  add a product to the catalog
  cart            manage the cart (show|add|remove|drop|clear)
  checkout        place an order from the cart
  order           show one order by id
  orders          list the current user's orders
  route           resolve a view name through the navigation guard
`

type app struct {
	services *api.Services
	sessions *store.SessionStore
	carts    *store.CartStore
	views    *router.Router
	validate *payload.Validator
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	st, err := storage.NewFileStorage(cfg.StateDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open state directory")
	}

	client, err := api.NewClient(api.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create API client")
	}

	services := api.NewServices(client)
	sessions := store.NewSessionStore(services.Auth, st, log)
	client.SetTokenSource(sessions)
	carts := store.NewCartStore(st, log)
	views := router.New(router.DefaultRoutes(), sessions)

	validate, err := payload.NewValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create payload validator")
	}

	a := &app{
		services: services,
		sessions: sessions,
		carts:    carts,
		views:    views,
		validate: validate,
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "shopfront:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "refresh":
		return a.refresh(ctx, args)
	case "logout":
		a.sessions.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "products":
		return a.products(ctx, args)
	case "product":
		return a.product(ctx, args)
	case "product-create":
		return a.productCreate(ctx, args)
	case "cart":
		return a.cart(ctx, args)
	case "checkout":
		return a.checkout(ctx)
	case "order":
		return a.order(ctx, args)
	case "orders":
		return a.orders(ctx)
	case "route":
		return a.route(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	req := payload.CreateUserRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
	}
	if err := a.validate.Validate(req); err != nil {
		return err
	}

	user, apiErr := a.services.Users.Create(ctx, req)
	if apiErr != nil {
		return apiErr
	}

	fmt.Printf("registered %s (id %d)\n", user.Username, user.ID)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	req := payload.LoginRequest{Email: *email, Password: *password}
	if err := a.validate.Validate(req); err != nil {
		return err
	}

	a.sessions.Login(ctx, *email, *password)
	if apiErr := a.sessions.Err(); apiErr != nil {
		return apiErr
	}

	session := a.sessions.Session()
	fmt.Printf("logged in as user %d, token valid until %s\n",
		session.UserID, session.ExpiresAt().Format(time.RFC3339))
	return nil
}

func (a *app) refresh(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("refresh", flag.ExitOnError)
	token := fs.String("token", "", "refresh token (defaults to the stored one)")
	fs.Parse(args)

	refreshToken := *token
	if refreshToken == "" {
		refreshToken = a.sessions.Session().RefreshToken
	}
	if refreshToken == "" {
		return fmt.Errorf("no refresh token available; log in first")
	}

	a.sessions.Refresh(ctx, refreshToken)
	if apiErr := a.sessions.Err(); apiErr != nil {
		return apiErr
	}

	fmt.Printf("session refreshed, token valid until %s\n",
		a.sessions.Session().ExpiresAt().Format(time.RFC3339))
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	session := a.sessions.Session()
	if !session.Authenticated() {
		fmt.Println("not authenticated")
		return nil
	}

	user, apiErr := a.services.Users.Me(ctx)
	if apiErr != nil {
		return apiErr
	}

	fmt.Printf("%s <%s> (id %d)\n", user.Username, user.Email, user.ID)
	if claims, err := auth.Claims(session.AccessToken); err == nil {
		if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
			fmt.Printf("token expires %s\n", exp.Format(time.RFC3339))
		}
	}
	return nil
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	offset := fs.Int("offset", 0, "listing offset")
	limit := fs.Int("limit", 20, "listing limit")
	fs.Parse(args)

	products, apiErr := a.services.Products.List(ctx, *offset, *limit)
	if apiErr != nil {
		return apiErr
	}

	for _, p := range products {
		fmt.Printf("%6d  %-30s %10.2f\n", p.ID, p.Name, p.Price)
	}
	return nil
}

func (a *app) product(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}

	product, apiErr := a.services.Products.GetByID(ctx, id)
	if apiErr != nil {
		return apiErr
	}

	fmt.Printf("%d: %s — %s (%.2f)\n", product.ID, product.Name, product.Description, product.Price)
	return nil
}

func (a *app) productCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product-create", flag.ExitOnError)
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	price := fs.Float64("price", 0, "product price")
	fs.Parse(args)

	req := payload.CreateProductRequest{
		Name:        *name,
		Description: *description,
		Price:       *price,
	}
	if err := a.validate.Validate(req); err != nil {
		return err
	}

	product, apiErr := a.services.Products.Create(ctx, req)
	if apiErr != nil {
		return apiErr
	}

	fmt.Printf("created product %d: %s\n", product.ID, product.Name)
	return nil
}

func (a *app) cart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		items := a.carts.Items()
		if len(items) == 0 {
			fmt.Println("cart is empty")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%6d  %-30s %10.2f\n", item.ID, item.Name, item.Price)
		}
		fmt.Printf("%d item(s), total %.2f\n", a.carts.Len(), a.carts.Total())
		return nil
	case "add":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		product, apiErr := a.services.Products.GetByID(ctx, id)
		if apiErr != nil {
			return apiErr
		}
		a.carts.Add(product.Product())
		fmt.Printf("added %s\n", product.Name)
		return nil
	case "remove":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		a.carts.RemoveOne(model.Product{ID: id})
		return nil
	case "drop":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		a.carts.RemoveAllMatching(model.Product{ID: id})
		return nil
	case "clear":
		a.carts.Clear()
		return nil
	default:
		return fmt.Errorf("unknown cart subcommand %q", args[0])
	}
}

func (a *app) checkout(ctx context.Context) error {
	session := a.sessions.Session()
	if !session.Authenticated() {
		return fmt.Errorf("checkout requires authentication; log in first")
	}

	items := a.carts.Items()
	if len(items) == 0 {
		return fmt.Errorf("cart is empty")
	}

	req := payload.CreateOrderRequest{UserID: session.UserID}
	for _, item := range items {
		req.Products = append(req.Products, payload.CreateOrderProduct{ID: item.ID})
	}
	if err := a.validate.Validate(req); err != nil {
		return err
	}

	order, apiErr := a.services.Orders.Create(ctx, req)
	if apiErr != nil {
		return apiErr
	}

	a.carts.Clear()
	fmt.Printf("placed order %d (%s), total %.2f\n", order.ID, order.OrderStatus, order.TotalAmount)
	return nil
}

func (a *app) order(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}

	order, apiErr := a.services.Orders.GetByID(ctx, id)
	if apiErr != nil {
		return apiErr
	}

	fmt.Printf("order %d (%s), total %.2f, %d item(s)\n",
		order.ID, order.OrderStatus, order.TotalAmount, len(order.Products))
	return nil
}

func (a *app) orders(ctx context.Context) error {
	orders, apiErr := a.services.Orders.ListForCurrentUser(ctx)
	if apiErr != nil {
		return apiErr
	}

	for _, o := range orders {
		fmt.Printf("%6d  %-12s %10.2f\n", o.ID, o.OrderStatus, o.TotalAmount)
	}
	return nil
}

func (a *app) route(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("route name required")
	}

	resolved := a.views.Resolve(args[0])
	fmt.Printf("%s -> %s\n", args[0], resolved.Path)
	return nil
}

func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("id argument required")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}

	return id, nil
}
