package rvk

// Sha256Sig0 returns SHA-256 σ0(rs1).
func Sha256Sig0(rs1 uint32) uint32 { return sha256sig0(rs1) }

// Sha256Sig1 returns SHA-256 σ1(rs1).
func Sha256Sig1(rs1 uint32) uint32 { return sha256sig1(rs1) }

// Sha256Sum0 returns SHA-256 Σ0(rs1).
func Sha256Sum0(rs1 uint32) uint32 { return sha256sum0(rs1) }

// Sha256Sum1 returns SHA-256 Σ1(rs1).
func Sha256Sum1(rs1 uint32) uint32 { return sha256sum1(rs1) }

// Sha512Sig0 returns SHA-512 σ0(rs1).
func Sha512Sig0(rs1 uint64) uint64 { return sha512sig0(rs1) }

// Sha512Sig1 returns SHA-512 σ1(rs1).
func Sha512Sig1(rs1 uint64) uint64 { return sha512sig1(rs1) }

// Sha512Sum0 returns SHA-512 Σ0(rs1).
func Sha512Sum0(rs1 uint64) uint64 { return sha512sum0(rs1) }

// Sha512Sum1 returns SHA-512 Σ1(rs1).
func Sha512Sum1(rs1 uint64) uint64 { return sha512sum1(rs1) }
