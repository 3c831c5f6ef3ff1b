package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	repo "Plenum/internal/repo"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userLoginKey contextKey = "userLogin"
)

const tokenTTL = 30 * 24 * time.Hour

type Authenv struct {
	JWTkey []byte
	Repo   repo.Repository
	Log    *zap.Logger
}

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.RWMutex
	r   rate.Limit
	b   int
}

type Loginrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type Registerrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

// LimitMiddleware applies per-IP rate limiting keyed on the remote address.
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := i.getLimiter(r.RemoteAddr)
		if !limiter.Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// LoginFromContext returns the authenticated login, or "" outside the secured
// routes. Audit records use it as the user context.
func LoginFromContext(ctx context.Context) string {
	login, _ := ctx.Value(userLoginKey).(string)
	return login
}

// UserIDFromContext returns the authenticated user id, 0 when absent.
func UserIDFromContext(ctx context.Context) int {
	id, _ := ctx.Value(userIDKey).(int)
	return id
}

func (env *Authenv) token(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := r.Cookie("session_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// AuthMiddleware validates the JWT and stashes user id and login in the
// request context.
func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := env.token(r)
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return env.JWTkey, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		login, ok := claims["login"].(string)
		if !ok || login == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, int(userIDFloat))
		ctx = context.WithValue(ctx, userLoginKey, login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (env *Authenv) issueToken(w http.ResponseWriter, status int, userID int, login string) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"login":   login,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString(env.JWTkey)
	if err != nil {
		env.Log.Error("sign token", zap.Error(err))
		http.Error(w, "Token error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    tokenString,
		Expires:  time.Now().Add(tokenTTL),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"token": tokenString})
}

func InitDB(log *zap.Logger) *sql.DB {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "user=postgres dbname=postgres password=password sslmode=disable"
	}
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			connStr = connStr + "?sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("database config", zap.Error(err))
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		log.Fatal("database unreachable", zap.Error(err))
	}
	return db
}

func (env *Authenv) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req Registerrequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	req.Email = strings.TrimSpace(req.Email)
	if req.Login == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Login, email and password required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		http.Error(w, "Password too short", http.StatusBadRequest)
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}
	id, err := env.Repo.CreateUser(r.Context(), req.Login, req.Email, hashedPassword)
	if err != nil {
		env.Log.Warn("create user", zap.String("login", req.Login), zap.Error(err))
		http.Error(w, "User already exists or DB error", http.StatusConflict)
		return
	}

	env.issueToken(w, http.StatusCreated, id, req.Login)
}

func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req Loginrequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		http.Error(w, "Login and password required", http.StatusBadRequest)
		return
	}

	id, hash, err := env.Repo.GetBylogin(r.Context(), req.Login)
	if err != nil {
		env.Log.Error("login lookup", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if id == 0 || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	env.issueToken(w, http.StatusOK, id, req.Login)
}
