package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 缺省代价；账号目录只存哈希，不存明文
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword 明文对哈希；true 即凭证匹配
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
