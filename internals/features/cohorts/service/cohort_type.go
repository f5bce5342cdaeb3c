package service

import (
	"log"
	"strings"
)

/* =========================================
   Transformasi tipe kohort (center vs batch)
   ========================================= */

// TransformCohortType menentukan tipe akhir sebuah kohort.
//
// Kohort induk (center):
//   - regular -> regularCenter
//   - remote  -> remoteCenter
//   - selain itu tipe asli dipertahankan.
//
// Kohort anak (batch): tipe anak diturunkan MURNI dari tipe induknya —
// field tipe milik anak sendiri diabaikan. Kalau tipe induk tidak
// dikenali (atau tidak ada), tipe asli anak dipertahankan apa adanya.
// Anak tanpa field tipe pun tetap mendapat tipe batch selama tipe
// induknya bisa ditentukan.
func TransformCohortType(originalType string, hasParent bool, parentType string) string {
	if !hasParent {
		switch strings.ToLower(strings.TrimSpace(originalType)) {
		case "regular":
			return "regularCenter"
		case "remote":
			return "remoteCenter"
		default:
			return originalType
		}
	}

	switch strings.ToLower(strings.TrimSpace(parentType)) {
	case "regular", "regularcenter":
		return "regularBatch"
	case "remote", "remotecenter":
		return "remoteBatch"
	default:
		if parentType == "" {
			log.Printf("[COHORT] tipe induk tidak ditemukan, tipe anak dipertahankan: %q", originalType)
		} else {
			log.Printf("[COHORT] tipe induk %q tidak dikenali, tipe anak dipertahankan: %q", parentType, originalType)
		}
		return originalType
	}
}
