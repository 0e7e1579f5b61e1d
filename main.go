package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cartsync/lib/myconfig"
	"github.com/MarcGrol/cartsync/lib/myevents"
	"github.com/MarcGrol/cartsync/lib/myhttpclient"
	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/lib/mypublisher"
	"github.com/MarcGrol/cartsync/lib/mypubsub"
	"github.com/MarcGrol/cartsync/lib/myqueue"
	"github.com/MarcGrol/cartsync/lib/mystore"
	"github.com/MarcGrol/cartsync/lib/mytime"
	"github.com/MarcGrol/cartsync/lib/myuuid"
	"github.com/MarcGrol/cartsync/lib/myvault"
	"github.com/MarcGrol/cartsync/services/analytics"
	"github.com/MarcGrol/cartsync/services/analytics/analyticsevents"
	"github.com/MarcGrol/cartsync/services/cart"
	"github.com/MarcGrol/cartsync/services/cart/cartstate"
	"github.com/MarcGrol/cartsync/services/datasource"
	"github.com/MarcGrol/cartsync/services/datasourceepiserver"
	"github.com/MarcGrol/cartsync/services/datasourcemock"
	"github.com/MarcGrol/cartsync/services/datasourcerest"
	"github.com/MarcGrol/cartsync/services/warmup"
)

func main() {
	c := context.Background()

	cfg, err := myconfig.Load()
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	router := mux.NewRouter()
	logger := mylog.New("cartsync")
	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	vault, vaultCleanup, err := myvault.New[myvault.Token](c)
	if err != nil {
		log.Fatalf("Error creating vault: %s", err)
	}
	defer vaultCleanup()

	err = seedToken(c, cfg, vault)
	if err != nil {
		log.Fatalf("Error seeding commerce token: %s", err)
	}

	ds, dsCleanup, err := createDatasource(c, cfg, vault, uuider)
	if err != nil {
		log.Fatalf("Error creating datasource %s: %s", cfg.Datasource, err)
	}
	defer dsCleanup()

	pub, pubCleanup, err := createPublisher(c, router, nower, logger)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer pubCleanup()

	notifier := analytics.NewNotifier(pub, uuider, mylog.New("analytics"))
	err = notifier.CreateTopics(c)
	if err != nil {
		log.Fatalf("Error creating analytics topics: %s", err)
	}

	eventStore, eventStoreCleanup, err := mystore.New[analyticsevents.ProductAddedToCart](c)
	if err != nil {
		log.Fatalf("Error creating analytics event store: %s", err)
	}
	defer eventStoreCleanup()
	analytics.NewEventService(eventStore).RegisterEndpoints(c, router)

	store := cartstate.NewStore(mylog.New("cartstate"))
	synchronizer := cart.NewSynchronizer(ds, store, notifier, mylog.New("cart"))
	cart.NewWebService(synchronizer, store).RegisterEndpoints(c, router)
	warmup.NewService(synchronizer).RegisterEndpoints(c, router)

	startWebServerBlocking(c, cfg, router, synchronizer)
}

func seedToken(c context.Context, cfg myconfig.Config, vault myvault.VaultReadWriter[myvault.Token]) error {
	if cfg.CommerceAPIKey == "" {
		return nil
	}
	return vault.Put(c, myvault.CurrentToken, myvault.Token{
		ProviderName: cfg.Datasource,
		AccessToken:  cfg.CommerceAPIKey,
	})
}

func createDatasource(c context.Context, cfg myconfig.Config, vault myvault.VaultReader[myvault.Token], uuider myuuid.UUIDer) (datasource.Datasource, func(), error) {
	switch cfg.Datasource {
	case myconfig.DatasourceRest:
		return datasourcerest.New(cfg.CommerceBaseURL, cfg.CartUID, myhttpclient.New(), vault), func() {}, nil
	case myconfig.DatasourceEpiserver:
		return datasourceepiserver.New(cfg.CommerceBaseURL, cfg.CartUID, myhttpclient.New(), vault), func() {}, nil
	default:
		cartStore, cleanup, err := mystore.New[datasource.Cart](c)
		if err != nil {
			return nil, nil, err
		}
		return datasourcemock.New(cfg.CartUID, cartStore, uuider), cleanup, nil
	}
}

func createPublisher(c context.Context, router *mux.Router, nower mytime.Nower, logger mylog.Logger) (mypublisher.Publisher, func(), error) {
	outbox, outboxCleanup, err := mystore.New[myevents.EventEnvelope](c)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating outbox: %w", err)
	}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		outboxCleanup()
		return nil, nil, fmt.Errorf("error creating pubsub: %w", err)
	}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		pubsubCleanup()
		outboxCleanup()
		return nil, nil, fmt.Errorf("error creating queue: %w", err)
	}

	pub := mypublisher.New(outbox, pubsub, queue, nower, logger)
	pub.RegisterEndpoints(c, router)

	return pub, func() {
		queueCleanup()
		pubsubCleanup()
		outboxCleanup()
	}, nil
}

func startWebServerBlocking(c context.Context, cfg myconfig.Config, router *mux.Router, synchronizer *cart.Synchronizer) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting webserver on port %s (try http://localhost:%s/api/cart)", cfg.Port, cfg.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting webserver on port %s: %s", cfg.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Printf("Shutting down webserver")
	c, cancel := context.WithTimeout(c, cfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(c)
	if err != nil {
		log.Printf("Error shutting down webserver: %s", err)
	}

	// Quantity updates and analytics notifications may still be running
	synchronizer.Wait()
	log.Printf("Webserver stopped")
}
