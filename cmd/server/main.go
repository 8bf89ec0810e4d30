package main

import (
	"context"
	"hash/maphash"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/lockbox-server/internal/config"
	"github.com/vancomm/lockbox-server/internal/logging"
	"github.com/vancomm/lockbox-server/internal/middleware"
	"github.com/vancomm/lockbox-server/internal/session"
)

var log = logging.New()

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	jwt, err := config.NewJWT()
	if err != nil {
		log.Fatal("unable to load JWT keys: ", err)
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		log.Fatal("unable to read cookie config: ", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		log.Fatal("unable to read ws config: ", err)
	}

	app := &application{
		log:      log,
		sessions: session.NewStore(createRand()),
		cookies:  cookies,
		ws:       ws,
		rnd:      createRand(),
	}

	addr := config.Port()
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(app.ServeMux(),
			middleware.Cors(),
			middleware.Auth(cookies),
			middleware.Logging(log),
		),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
