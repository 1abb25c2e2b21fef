package main

import (
	"crypto/tls"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"splashsrv/db"
	"splashsrv/gs"
	"splashsrv/login"
	"splashsrv/ops"
)

var (
	loginAddr   string
	gameAddr    string
	gameHost    string
	opsAddr     string
	metricsAddr string
	certFile    string
	keyFile     string
	dbPath      string
	newAccount  string
)

func init() {
	flag.StringVar(&loginAddr, "l", "0.0.0.0:2050", "The login gate binding address")
	flag.StringVar(&gameAddr, "g", "0.0.0.0:2051", "The game server binding address")
	flag.StringVar(&gameHost, "h", "127.0.0.1", "The game server address advertised to clients")
	flag.StringVar(&opsAddr, "i", "127.0.0.1:50000", "The health gRPC binding address")
	flag.StringVar(&metricsAddr, "m", "127.0.0.1:9100", "The metrics binding address")
	flag.StringVar(&certFile, "cert", "cert.pem", "The TLS certificate file")
	flag.StringVar(&keyFile, "key", "key.pem", "The TLS key file")
	flag.StringVar(&dbPath, "db", "splashsrv.db", "The sqlite database file")
	flag.StringVar(&newAccount, "newuser", "", "Create an account as id:password and exit")
}

func main() {
	flag.Parse()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, os.Interrupt)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	store, err := db.Open(dbPath, zapLogger.Named("db"))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	if newAccount != "" {
		id, password, ok := strings.Cut(newAccount, ":")
		if !ok {
			log.Fatal("-newuser wants id:password")
		}
		if err := store.CreateAccount(id, password); err != nil {
			log.Fatalf("failed to create account: %v", err)
		}
		log.Printf("account %s created", id)
		return
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		log.Fatalf("failed to load TLS key pair: %v", err)
	}
	tlsConf := &tls.Config{Certificates: []tls.Certificate{cert}}

	gameSrv := gs.New(store, zapLogger.Named("gs"))
	defer gameSrv.Close()
	{
		lis, err := tls.Listen("tcp", gameAddr, tlsConf)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			log.Printf("game server listen at %s", gameAddr)
			if err := gameSrv.Serve(lis); err != nil {
				log.Fatal(err)
			}
		}()
	}

	{
		_, port, err := net.SplitHostPort(gameAddr)
		if err != nil {
			log.Fatalf("bad game address: %v", err)
		}
		portNo, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			log.Fatalf("bad game port: %v", err)
		}
		servers := []login.GameServer{{
			Number:  1,
			Address: gameHost,
			Port:    uint16(portNo),
			Name:    "splash",
			Max:     20,
			Now:     1,
		}}
		loginSrv := login.New(store, servers, zapLogger.Named("login"))

		lis, err := tls.Listen("tcp", loginAddr, tlsConf)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			log.Printf("login gate listen at %s", loginAddr)
			if err := loginSrv.Serve(lis); err != nil {
				log.Fatal(err)
			}
		}()
	}

	grpcServer := ops.NewGRPCServer(zapLogger.Named("ops"))
	{
		lis, err := net.Listen("tcp", opsAddr)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			log.Printf("health server listen at %s", opsAddr)
			if err := grpcServer.Serve(lis); err != nil {
				log.Fatal(err)
			}
		}()
	}

	{
		lis, err := net.Listen("tcp", metricsAddr)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			log.Printf("metrics listen at %s", metricsAddr)
			if err := ops.ServeMetrics(lis); err != nil {
				log.Fatal(err)
			}
		}()
	}

	<-sig

	grpcServer.GracefulStop()
	log.Println("server shutdown")
}
